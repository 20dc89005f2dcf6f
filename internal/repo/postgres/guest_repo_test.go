package postgres

import (
	"reflect"
	"testing"

	"github.com/victornavas/unified-api/internal/domain"
)

func TestPartitionStatusChanges_GroupsByStatus(t *testing.T) {
	changes := []domain.StatusChange{
		{GuestID: 7, Status: domain.StatusGoing},
		{GuestID: 8, Status: domain.StatusNotGoing},
		{GuestID: 9, Status: domain.StatusGoing},
	}

	batches := partitionStatusChanges(changes)

	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if batches[0].status != domain.StatusGoing || !reflect.DeepEqual(batches[0].ids, []int64{7, 9}) {
		t.Fatalf("unexpected first batch: %+v", batches[0])
	}
	if batches[1].status != domain.StatusNotGoing || !reflect.DeepEqual(batches[1].ids, []int64{8}) {
		t.Fatalf("unexpected second batch: %+v", batches[1])
	}
}

func TestPartitionStatusChanges_LastChangePerGuestWins(t *testing.T) {
	// Guest 7 flips from going to not-going within one submission; grouped
	// application must match applying pairs in order.
	changes := []domain.StatusChange{
		{GuestID: 9, Status: domain.StatusGoing},
		{GuestID: 7, Status: domain.StatusNotGoing},
		{GuestID: 7, Status: domain.StatusGoing},
	}

	batches := partitionStatusChanges(changes)

	flat := map[int64]domain.Status{}
	for _, b := range batches {
		for _, id := range b.ids {
			if _, dup := flat[id]; dup {
				t.Fatalf("guest %d appears in more than one batch", id)
			}
			flat[id] = b.status
		}
	}

	if flat[7] != domain.StatusGoing {
		t.Fatalf("guest 7 should end confirmed-going, got %s", flat[7])
	}
	if flat[9] != domain.StatusGoing {
		t.Fatalf("guest 9 should end confirmed-going, got %s", flat[9])
	}
}

func TestPartitionStatusChanges_Empty(t *testing.T) {
	if batches := partitionStatusChanges(nil); len(batches) != 0 {
		t.Fatalf("expected no batches, got %d", len(batches))
	}
}
