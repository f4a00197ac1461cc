package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tirasundara/sms-alert-classifier/internal/classifier"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/extractor"
	"github.com/tirasundara/sms-alert-classifier/internal/logger"
	"github.com/tirasundara/sms-alert-classifier/internal/otp"
)

// ClassificationService orchestrates OTP detection, transaction classification and field extraction.
// It holds no per-message state and is safe for concurrent use.
type ClassificationService struct {
	extractor  domain.TransactionExtractor
	NumWorkers int
	BatchSize  int
}

// NewClassificationService creates a new ClassificationService
func NewClassificationService(ext domain.TransactionExtractor) *ClassificationService {
	return &ClassificationService{
		extractor:  ext,
		NumWorkers: 4,   // Default to 4 workers
		BatchSize:  100, // Default to 100 messages per batch
	}
}

// NewDefaultClassificationService wires the default extraction strategies
func NewDefaultClassificationService() *ClassificationService {
	return NewClassificationService(extractor.NewExtractor())
}

// Classify runs the pipeline over one message. It never fails: anything that
// cannot be fully classified comes back as None with a reason.
func (s *ClassificationService) Classify(body, senderAddress string) domain.Classification {
	if code, ok := otp.Detect(body); ok {
		return domain.NewOTP(code)
	}

	decision := classifier.Classify(body, senderAddress)
	if !decision.Accepted {
		return domain.NewNone(decision.Reason)
	}

	rec, err := s.extractor.Extract(body, senderAddress)
	if err != nil {
		// An accepted message without an amount is dropped entirely, never half filled
		return domain.NewNone(domain.ReasonNoAmount)
	}

	return domain.NewTransaction(rec)
}

// ClassifyAll classifies msgs with a pool of workers. Results keep the order of msgs.
func (s *ClassificationService) ClassifyAll(ctx context.Context, msgs []domain.Message) ([]domain.Result, error) {
	log := logger.FromContext(ctx)
	results := make([]domain.Result, len(msgs))

	numWorkers := s.NumWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}
	batchSize := s.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	// Set up concurrent processing
	jobs := make(chan batch, numWorkers)

	// Start the worker pool
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for b := range jobs {
				for j, msg := range b.msgs {
					c := s.Classify(msg.Body, msg.Address)
					results[b.start+j] = domain.Result{Message: msg, Classification: c}

					log.Debug().
						Str("id", msg.ID).
						Str("address", msg.Address).
						Str("kind", string(c.Kind)).
						Str("reason", string(c.Reason)).
						Msg("Message classified")
				}
			}
		}()
	}

	// Distribute batches to workers, stopping early when ctx is done
	err := distribute(ctx, msgs, batchSize, jobs)
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("classifying messages: %w", err)
	}

	return results, nil
}

// batch is a contiguous run of messages starting at index start
type batch struct {
	start int
	msgs  []domain.Message
}

func distribute(ctx context.Context, msgs []domain.Message, batchSize int, jobs chan<- batch) error {
	for start := 0; start < len(msgs); start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + batchSize
		if end > len(msgs) {
			end = len(msgs)
		}

		select {
		case jobs <- batch{start: start, msgs: msgs[start:end]}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Ensure ClassificationService implements the MessageClassifier interface
var _ domain.MessageClassifier = (*ClassificationService)(nil)
