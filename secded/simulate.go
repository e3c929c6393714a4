package secded

import (
	"context"
	"sync"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/channel"
	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// SimulationReport tallies what the decoder made of words sent through a
// noisy channel.
type SimulationReport struct {
	Trials  int
	Flips   int
	Workers int
	Seed    string

	Clean        uint64
	Corrected    uint64
	Detected     uint64
	Miscorrected uint64
}

func (self *SimulationReport) add(other *SimulationReport) {
	self.Clean += other.Clean
	self.Corrected += other.Corrected
	self.Detected += other.Detected
	self.Miscorrected += other.Miscorrected
}

func (self *SimulationReport) record(want uint32, res encoding.Result) {
	switch {
	case res.Status == encoding.StatusDoubleError:
		self.Detected++
	case res.Data != want:
		self.Miscorrected++
	case res.Status == encoding.StatusClean:
		self.Clean++
	default:
		self.Corrected++
	}
}

// Simulate encodes cfg.Trials random words, flips cfg.Flips random bits in
// each codeword and decodes the result. Runs are reproducible for a given seed
// and worker count.
func Simulate(ctx context.Context, cfg Config) (*SimulationReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	report := &SimulationReport{}
	if err := copier.Copy(report, &cfg); err != nil {
		return nil, err
	}

	root := channel.NewNoise(cfg.Seed)
	var mutex sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		trials := cfg.Trials / cfg.Workers
		if w < cfg.Trials%cfg.Workers {
			trials++
		}
		noise := root.Fork(uint64(w))
		group.Go(func() error {
			local := &SimulationReport{}
			for i := 0; i < trials; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				d := noise.Word()
				h, err := encoding.Encode(d)
				if err != nil {
					return err
				}
				local.record(d, encoding.Inspect(h^noise.Pattern(cfg.Flips)))
			}
			mutex.Lock()
			report.add(local)
			mutex.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	logger.WithField("trials", report.Trials).WithField("flips", report.Flips).WithField("miscorrected", report.Miscorrected).Info("simulation done")
	return report, nil
}
