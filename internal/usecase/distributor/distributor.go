package distributor

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/charityflow-backend/internal/domain"
)

// Result is the outcome of one distribution run
type Result[S, T domain.Fundable] struct {
	Source S
	// Targets holds only the counterparts that received a transfer, in allocation order
	Targets   []T
	Allocated decimal.Decimal
	// Closed counts the entities (source included) closed by this run
	Closed int
}

// Distribute allocates the remaining capacity of a freshly created source
// across the open counterparts of the opposite kind.
// Logic:
//  1. Order targets oldest first (ties broken by ID), see SortOpen
//  2. For each open target while the source still has capacity:
//     transfer = min(source remaining, target remaining), invested on both sides
//  3. A target whose remaining reaches zero is closed at now
//  4. The source is closed at now when nothing remains (a zero-amount source closes immediately)
//
// Distribute never fails: entities are mutated in memory and persisting them
// atomically is left to the caller.
func Distribute[S, T domain.Fundable](source S, openTargets []T, now time.Time) Result[S, T] {
	result := Result[S, T]{
		Source:    source,
		Targets:   make([]T, 0),
		Allocated: decimal.Zero,
	}
	sourceWasOpen := source.IsOpen()
	remaining := source.Remaining()

	for _, target := range SortOpen(openTargets) {
		if !remaining.IsPositive() {
			break
		}
		if !target.IsOpen() {
			continue
		}

		transfer := decimal.Min(remaining, target.Remaining())
		if !transfer.IsPositive() {
			continue
		}

		target.Invest(transfer, now)
		source.Invest(transfer, now)
		remaining = remaining.Sub(transfer)
		result.Allocated = result.Allocated.Add(transfer)
		result.Targets = append(result.Targets, target)

		if !target.IsOpen() {
			result.Closed++
		}
	}

	if remaining.IsZero() {
		source.Close(now)
	}
	if sourceWasOpen && !source.IsOpen() {
		result.Closed++
	}

	return result
}

// SortOpen returns a copy of targets ordered by creation date ascending,
// ties broken by ascending ID
func SortOpen[T domain.Fundable](targets []T) []T {
	sorted := make([]T, len(targets))
	copy(sorted, targets)

	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].CreatedAt(), sorted[j].CreatedAt()
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return sorted[i].Key() < sorted[j].Key()
	})

	return sorted
}
