// internal/analysis/run.go

// Package analysis builds one job per (species, genome file) pair, runs the
// selected engine adapter over them serially or through a bounded worker
// pool, and aggregates scored amplicons into the nested analysis report.
//
// Failure policy: *engine.ConfigError aborts the whole run (the same
// mistake would recur on every job) and cancels anything still queued;
// every other per-job failure is logged, recorded as an empty genome
// report, and the batch continues.
package analysis

import (
	"context"
	"errors"
	"sync"

	"ampliscan-core/primer"
	"ampliscan/internal/engine"
	"ampliscan/internal/genomes"
	"ampliscan/internal/report"

	"github.com/rs/zerolog"
)

// Config controls one analysis run.
type Config struct {
	Spec     primer.Spec
	Threads  int      // worker count; anything < 1 runs serially
	Observer Observer // nil selects NopObserver
	Log      zerolog.Logger
}

// Run screens every target and returns the finished report. The report is
// never exposed before the run completes; on a fatal configuration error
// the report is nil. On cancellation the partial report is returned along
// with the context error so the caller can decide whether to persist it.
func Run(ctx context.Context, runner engine.Runner, cfg Config, targets []genomes.Target, species []string) (report.AnalysisReport, error) {
	obs := cfg.Observer
	if obs == nil {
		obs = NopObserver{}
	}
	thr := cfg.Threads
	if thr < 1 {
		thr = 1
	}

	jobs := make([]Job, 0, len(targets))
	for _, t := range targets {
		jobs = append(jobs, Job{Species: t.Species, GenomeID: t.ID, Path: t.Path})
	}

	rep := report.AnalysisReport{}
	for _, sp := range species {
		rep.AddSpecies(sp)
	}

	obs.Start(len(jobs))
	defer obs.Done()

	if thr == 1 {
		return runSerial(ctx, runner, cfg, jobs, rep, obs)
	}
	return runParallel(ctx, runner, cfg, jobs, rep, obs, thr)
}

func runSerial(ctx context.Context, runner engine.Runner, cfg Config, jobs []Job, rep report.AnalysisReport, obs Observer) (report.AnalysisReport, error) {
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		seqs, err := runner.Run(ctx, j.Path)
		switch {
		case err == nil:
			rep.Add(j.Species, j.GenomeID, score(cfg.Spec, seqs))
		case isFatal(err):
			return nil, err
		default:
			logJobFailure(cfg.Log, j, err)
			rep.Add(j.Species, j.GenomeID, report.GenomeReport{})
		}
		obs.Advance(j.Species, j.GenomeID)
	}
	return rep, nil
}

func runParallel(ctx context.Context, runner engine.Runner, cfg Config, jobs []Job, rep report.AnalysisReport, obs Observer, thr int) (report.AnalysisReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type jobResult struct {
		job Job
		rep report.GenomeReport
		err error
	}
	jobCh := make(chan Job, thr*2)
	resCh := make(chan jobResult, thr*2)

	var wg sync.WaitGroup
	wg.Add(thr)
	for w := 0; w < thr; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobCh:
					if !ok {
						return
					}
					seqs, err := runner.Run(ctx, j.Path)
					r := jobResult{job: j, err: err}
					if err == nil {
						r.rep = score(cfg.Spec, seqs)
					}
					select {
					case resCh <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Single collector owns the report. Jobs target disjoint
	// (species, genome) keys, so no locking exists anywhere.
	var fatal error
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range resCh {
			if fatal != nil {
				continue
			}
			switch {
			case r.err == nil:
				rep.Add(r.job.Species, r.job.GenomeID, r.rep)
			case isFatal(r.err):
				fatal = r.err
				cancel() // drop queued jobs; in-flight workers drain
				continue
			default:
				logJobFailure(cfg.Log, r.job, r.err)
				rep.Add(r.job.Species, r.job.GenomeID, report.GenomeReport{})
			}
			obs.Advance(r.job.Species, r.job.GenomeID)
		}
	}()

feed:
	for _, j := range jobs {
		select {
		case jobCh <- j:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobCh)
	wg.Wait()
	close(resCh)
	cwg.Wait()

	if fatal != nil {
		return nil, fatal
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

func isFatal(err error) bool {
	var ce *engine.ConfigError
	return errors.As(err, &ce)
}

func logJobFailure(log zerolog.Logger, j Job, err error) {
	log.Warn().
		Err(err).
		Str("species", j.Species).
		Str("genome", j.GenomeID).
		Msg("job failed; recording empty result")
}
