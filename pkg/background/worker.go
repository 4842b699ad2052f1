package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"courierdesk/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New создает и запускает Worker для выполнения фоновых задач.
//
// Все задачи сначала выполняются синхронно ("прогрев"): ошибка или паника любой из них
// на этом этапе возвращается из New, и Worker не создается.
// Дальше задачи крутятся в фоне по своему TTL, пока не отменят ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing",
				logger.NewField("task", task.Info()),
			)
			return worker.runOnce(initCtx, task, phaseWarmup)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.runBackgroundTask(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется, пока все фоновые циклы не завершатся после отмены контекста.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl.String()),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task, phasePeriodic); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// runOnce выполняет задачу один раз: паника превращается в ошибку, итог попадает в метрики.
func (w *Worker) runOnce(ctx context.Context, task Task, phase string) (err error) {
	start := time.Now()
	result := resultOK

	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("%s panic: %v\n%s", phase, r, stack)
			result = resultPanic
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("phase", phase),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
		TaskRunsTotal.WithLabelValues(task.Info(), phase, result).Inc()
		TaskDurationSeconds.WithLabelValues(task.Info(), phase).Observe(time.Since(start).Seconds())
	}()

	if err = task.Do(ctx); err != nil {
		result = resultError
	}
	return err
}
