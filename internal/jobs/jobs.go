package jobs

import (
	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
)

// RentalLedger - часть агентства, нужная фоновым задачам
type RentalLedger interface {
	OverdueRentals() []*domain.Rental
}

// JobRunner выполняет фоновые задачи агентства
type JobRunner struct {
	ledger RentalLedger
	logger logger.Logger
}

// NewJobRunner создает новый исполнитель фоновых задач
func NewJobRunner(ledger RentalLedger, log logger.Logger) *JobRunner {
	return &JobRunner{
		ledger: ledger,
		logger: log,
	}
}

// runWithRecovery выполняет задачу, не давая panic уронить планировщик
func (jr *JobRunner) runWithRecovery(name string, job func()) {
	defer func() {
		if err := recover(); err != nil {
			jr.logger.Error("Job panicked", map[string]interface{}{
				"job":   name,
				"error": err,
			})
		}
	}()
	job()
}

// SweepOverdueRentals находит просроченные аренды и пишет их в журнал.
// Статус Overdue производный, поэтому задача ничего не изменяет -
// она только дает оператору видимость просрочек
func (jr *JobRunner) SweepOverdueRentals() {
	jr.runWithRecovery("SweepOverdueRentals", func() {
		overdue := jr.ledger.OverdueRentals()
		if len(overdue) == 0 {
			return
		}

		jr.logger.Info("Overdue rentals detected", map[string]interface{}{
			"count": len(overdue),
		})

		for _, r := range overdue {
			jr.logger.Warn("Rental is overdue", map[string]interface{}{
				"rental_id":   r.ID,
				"customer_id": r.Customer.ID,
				"vehicle_id":  r.Vehicle.ID,
				"end_date":    r.EndDate.Format("2006-01-02"),
			})
		}
	})
}
