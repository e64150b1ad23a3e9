package impl

import (
	"context"
	"log/slog"
	"sync"

	"nomnom/internal/domain/entity"
	"nomnom/internal/domain/service"
	"nomnom/internal/errors"
)

const defaultLiveWorkers = 4

type busynessWithIndex struct {
	index   int
	reading *entity.Busyness
}

// liveBusyness fetches readings for every point with a bounded worker pool and
// returns them keyed by point name. Failed lookups are left out so callers fall
// back to the estimator.
func liveBusyness(
	ctx context.Context,
	provider service.BusynessProvider,
	points []entity.PointOfInterest,
	cityName string,
	workers int,
	logger *slog.Logger,
) map[string]entity.Busyness {
	readings := make([]*entity.Busyness, len(points))
	if len(points) == 0 {
		return map[string]entity.Busyness{}
	}

	if workers <= 0 {
		workers = defaultLiveWorkers
	}
	workers = min(workers, len(points))

	pointCh := make(chan int, len(points))
	resultCh := make(chan busynessWithIndex, len(points))

	workerGroup := spawnBusynessWorkers(ctx, workers, pointCh, resultCh, provider, points, cityName, logger)
	go dispatchBusynessWork(ctx, pointCh, len(points))
	collectBusynessResults(resultCh, readings, workerGroup)

	live := make(map[string]entity.Busyness, len(points))
	for i, reading := range readings {
		if reading != nil {
			live[points[i].Name] = *reading
		}
	}

	return live
}

func spawnBusynessWorkers(
	ctx context.Context,
	workerCount int,
	pointCh <-chan int,
	resultCh chan<- busynessWithIndex,
	provider service.BusynessProvider,
	points []entity.PointOfInterest,
	cityName string,
	logger *slog.Logger,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range pointCh {
				if ctx.Err() != nil {
					return
				}

				reading, err := provider.LiveBusyness(ctx, points[idx].Name, cityName)
				if err != nil {
					if errors.IsCanceled(err) {
						logger.Debug("Live busyness lookup abandoned", slog.String("place", points[idx].Name))

						continue
					}
					logger.Warn("Live busyness unavailable, using estimate",
						slog.String("place", points[idx].Name),
						slog.Any("error", err),
					)

					continue
				}

				resultCh <- busynessWithIndex{index: idx, reading: reading}
			}
		}()
	}

	return &workerGroup
}

func dispatchBusynessWork(ctx context.Context, pointCh chan<- int, pointCount int) {
	defer close(pointCh)

	for i := range pointCount {
		if ctx.Err() != nil {
			return
		}

		pointCh <- i
	}
}

func collectBusynessResults(resultCh chan busynessWithIndex, readings []*entity.Busyness, workerGroup *sync.WaitGroup) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		readings[res.index] = res.reading
	}
}
