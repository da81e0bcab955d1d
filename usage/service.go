package usage

import (
	"context"
	"fmt"
	"os"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/usage/business/learner"
	"encore.app/usage/business/lesson"
	"encore.app/usage/business/session"
	"encore.app/usage/providers"
	"encore.app/usage/quota"
	"encore.app/usage/repository"
	"encore.app/usage/wordcache"
	"encore.app/usage/workflow"
)

var usageDB = sqldb.NewDatabase("usage", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	limiter   *quota.Limiter
	budget    *quota.Budget
	learner   learner.Business
	session   session.Business
	lesson    lesson.Business
	evaluator providers.Evaluator
	telemetry providers.Telemetry

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(usageDB)
	repo := repository.NewRepository(pgxdb)

	counter := quota.NewCounter(quota.NewKeyspaceStore())
	limiter := quota.NewLimiter(counter, quota.DefaultRules)
	budget := quota.NewBudget(counter, quota.DefaultDailyBudget)
	claims := quota.NewClaims(counter, quota.DefaultSessionLimits)

	cache := wordcache.New(wordcache.NewKeyspaceStore())

	generator := providers.NewGeneratorClient()
	workflow.SetActivityDependencies(repo.Jobs, generator)

	temporalClient, err := client.Dial(client.Options{
		HostPort: temporalHostPort(),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(temporalClient, workflow.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.Pregeneration)
	w.RegisterActivity(workflow.GenerateContentActivity)
	w.RegisterActivity(workflow.MarkJobFailedActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	enqueuer := workflow.NewTemporalEnqueuer(temporalClient)

	rlog.Info("usage service initialized", "task_queue", workflow.TaskQueue)

	return &Service{
		limiter:   limiter,
		budget:    budget,
		learner:   learner.NewLearnerBusiness(repo.Words, cache),
		session:   session.NewSessionBusiness(providers.NewTierClient(), claims),
		lesson:    lesson.NewLessonBusiness(repo.Lessons, repo.Jobs, enqueuer),
		evaluator: providers.NewEvaluatorClient(),
		telemetry: providers.NewTelemetryClient(),
		temporal:  temporalClient,
		worker:    w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

func temporalHostPort() string {
	if hp := os.Getenv("TEMPORAL_HOST_PORT"); hp != "" {
		return hp
	}
	return client.DefaultHostPort
}
