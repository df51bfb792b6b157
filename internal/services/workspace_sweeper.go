package services

import (
	"context"
	"log"
	"time"
)

// Start implements WorkspaceStore.
func (s *workspaceStore) Start(ctx context.Context) {
	log.Printf("🚀 Starting workspace sweeper (idle ttl %s, every %s)\n", s.idleTTL, s.sweepInterval)

	s.wg.Add(1)
	go s.sweepIdle(ctx)
}

// Stop implements WorkspaceStore.
func (s *workspaceStore) Stop() {
	s.stopOnce.Do(func() {
		log.Println("🛑 Stopping workspace sweeper...")
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *workspaceStore) sweepIdle(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			log.Println("🔄 Workspace sweeper stopped")
			return
		case <-ctx.Done():
			log.Println("🔄 Workspace sweeper stopped")
			return
		case <-ticker.C:
			if evicted := s.Sweep(s.now()); evicted > 0 {
				log.Printf("🧹 Evicted %d idle workspaces\n", evicted)
			}
		}
	}
}
