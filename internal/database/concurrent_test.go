package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestConcurrentPanelUpdates(t *testing.T) {
	b := NewTestDataBuilder(t).WithPanels("1A")
	db := b.Build()
	ctx := context.Background()
	panel := b.Panels()[0]

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := panel
			p.Description = fmt.Sprintf("Take %d", i)
			if err := db.UpdatePanel(ctx, p); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}
}

func TestConcurrentAddKeepsOrderDense(t *testing.T) {
	b := NewTestDataBuilder(t).WithProject("Parallel")
	db := b.Build()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.AddPanel(ctx, b.PrimaryProjectID(), nil); err != nil {
				t.Errorf("AddPanel failed: %v", err)
			}
		}()
	}
	wg.Wait()

	panels, err := db.GetPanels(ctx, b.PrimaryProjectID())
	if err != nil {
		t.Fatalf("GetPanels failed: %v", err)
	}
	if len(panels) != 8 {
		t.Fatalf("expected 8 panels, got %d", len(panels))
	}
	for i, p := range panels {
		if p.Order != i {
			t.Fatalf("panel %d has order %d", i, p.Order)
		}
	}
}
