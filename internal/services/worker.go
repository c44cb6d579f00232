package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/repositories"
)

// Worker retries answer evaluations in the background: answers in completed
// sessions that still lack feedback (a transient language-model failure at
// submit time) get swept back through the evaluator.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueAnswer(sessionID, questionID uuid.UUID)
}

type evaluationJob struct {
	sessionID  uuid.UUID
	questionID uuid.UUID
	answerText string
}

type worker struct {
	answerRepo       repositories.AnswerRepository
	evaluatorService EvaluatorService
	jobQueue         chan evaluationJob
	concurrency      int
	sweepInterval    time.Duration
	wg               sync.WaitGroup
	stopChan         chan struct{}
}

func NewWorker(
	answerRepo repositories.AnswerRepository,
	evaluatorService EvaluatorService,
	concurrency int,
	sweepInterval time.Duration,
) Worker {
	return &worker{
		answerRepo:       answerRepo,
		evaluatorService: evaluatorService,
		jobQueue:         make(chan evaluationJob, 100),
		concurrency:      concurrency,
		sweepInterval:    sweepInterval,
		stopChan:         make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting re-evaluation worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.sweepUnevaluated(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueAnswer implements Worker.
func (w *worker) EnqueueAnswer(sessionID, questionID uuid.UUID) {
	job := evaluationJob{sessionID: sessionID, questionID: questionID}
	select {
	case w.jobQueue <- job:
		log.Printf("📥 Re-evaluation enqueued for answer %s/%s\n", sessionID, questionID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue answer %s/%s\n", sessionID, questionID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case job := <-w.jobQueue:
			log.Printf("👷 Worker #%d re-evaluating answer %s/%s\n", workerID, job.sessionID, job.questionID)
			answerText := job.answerText
			if answerText == "" {
				answer, err := w.answerRepo.FindBySessionAndQuestion(job.sessionID, job.questionID)
				if err != nil {
					log.Printf("❌ Worker #%d could not load answer %s/%s: %v\n", workerID, job.sessionID, job.questionID, err)
					continue
				}
				answerText = answer.AnswerText
			}

			if _, err := w.evaluatorService.EvaluateAnswer(ctx, job.sessionID, job.questionID, answerText); err != nil {
				log.Printf("❌ Worker #%d failed to evaluate answer %s/%s: %v\n", workerID, job.sessionID, job.questionID, err)
			} else {
				log.Printf("✅ Worker #%d evaluated answer %s/%s\n", workerID, job.sessionID, job.questionID)
			}
		}
	}
}

func (w *worker) sweepUnevaluated(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting unevaluated answers sweeper")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Sweeper stopped")
			return
		case <-ticker.C:
			answers, err := w.answerRepo.FindUnevaluated(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch unevaluated answers: %v\n", err)
				continue
			}

			if len(answers) > 0 {
				log.Printf("📋 Found %d unevaluated answers\n", len(answers))
			}

			for _, answer := range answers {
				job := evaluationJob{
					sessionID:  answer.SessionID,
					questionID: answer.QuestionID,
					answerText: answer.AnswerText,
				}
				select {
				case w.jobQueue <- job:
				case <-w.stopChan:
					return
				}
			}
		}
	}
}
