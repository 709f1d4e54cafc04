package workers

import (
	"context"
	"log"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/metrics"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

// RetryDLQ periodically replays unresolved DLQ rows. Each tick shares
// one bulk indexer; a replay that fails to flush re-enters the DLQ
// through the indexer's failure callback and is picked up next tick.
func (w *SyncWorker) RetryDLQ(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.retryOnce(ctx); err != nil {
				log.Printf("DLQ retry error: %v", err)
			}
		}
	}
}

func (w *SyncWorker) retryOnce(ctx context.Context) error {
	var dlqs []models.DLQ
	if err := w.DB.Where("resolved = false").Limit(50).Find(&dlqs).Error; err != nil {
		return err
	}
	if len(dlqs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client: w.ES, Index: "", FlushBytes: 5 << 20, NumWorkers: 2,
	})
	if err != nil {
		return err
	}

	retried := w.replayDLQ(ctx, bi, dlqs)

	// resolve only after the flush; flush failures have already been
	// re-inserted as fresh DLQ rows by the indexer's failure callback
	if err := bi.Close(ctx); err != nil {
		return err
	}
	stats := bi.Stats()
	log.Printf("DLQ retry flush ok=%d failed=%d", stats.NumFlushed, stats.NumFailed)

	if len(retried) > 0 {
		now := time.Now()
		if err := w.DB.Model(&models.DLQ{}).Where("id IN ?", retried).Updates(map[string]any{
			"resolved":   true,
			"retried_at": &now,
		}).Error; err != nil {
			return err
		}
		metrics.ProcessedEvents.Add(float64(len(retried)))
		log.Printf("DLQ resolved %d row(s)", len(retried))
	}
	return nil
}

// replayDLQ re-enqueues each row's event on the shared indexer and
// returns the ids of rows whose replay was accepted.
func (w *SyncWorker) replayDLQ(ctx context.Context, bi esutil.BulkIndexer, dlqs []models.DLQ) []int64 {
	retried := make([]int64, 0, len(dlqs))
	for _, d := range dlqs {
		log.Printf("Retrying DLQ id=%d entity=%s op=%s", d.ID, d.EntityType, d.Op)
		ob := models.Outbox{
			ID:         d.OutboxID,
			EntityType: d.EntityType,
			Op:         d.Op,
		}
		if id, err := uuid.Parse(d.EntityID); err == nil {
			ob.EntityID = id
		}
		if err := w.applyEvent(ctx, bi, ob); err != nil {
			log.Printf("DLQ id=%d retry failed: %v", d.ID, err)
			continue
		}
		retried = append(retried, d.ID)
	}
	return retried
}
