package usecase

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/data/repository"
	"restaurant-ordering/internal/dto/response"
	"restaurant-ordering/pkg/apperr"

	"go.uber.org/zap"
)

// ReportService builds the completed-payments export. Read-only: it never
// writes to the payment store, and the same snapshot always renders the same
// rows.
type ReportService interface {
	BuildCompletedReport(ctx context.Context) (*response.CompletedReport, error)
}

type reportService struct {
	payments repository.PaymentRepository
	log      *zap.Logger
}

func NewReportService(payments repository.PaymentRepository, log *zap.Logger) ReportService {
	return &reportService{
		payments: payments,
		log:      log.With(zap.String("service", "report")),
	}
}

func (s *reportService) BuildCompletedReport(ctx context.Context) (*response.CompletedReport, error) {
	completed := entity.PaymentStatusCompleted
	payments, err := s.payments.FindAll(ctx, &completed)
	if err != nil {
		return nil, apperr.Storage("list completed payments", err)
	}

	if len(payments) == 0 {
		s.log.Info("Completed payments report requested with nothing to export")
		return nil, fmt.Errorf("%w: no completed payments", apperr.ErrEmptyReport)
	}

	rows := make([]response.ReportRow, len(payments))
	for i, payment := range payments {
		rows[i] = response.ReportRow{
			TransactionID: payment.TransactionID,
			Amount:        fmt.Sprintf("%.2f", payment.Amount),
			PaymentMethod: string(payment.Method),
			Status:        string(payment.Status),
		}
	}

	generatedAt := time.Now()

	s.log.Info("Completed payments report built", zap.Int("rows", len(rows)))

	return &response.CompletedReport{
		Rows:        rows,
		Document:    renderReportDocument(rows, generatedAt),
		GeneratedAt: generatedAt,
	}, nil
}

// renderReportDocument lays out the printable report: title block, tabular
// body, generation timestamp footer.
func renderReportDocument(rows []response.ReportRow, generatedAt time.Time) string {
	var b strings.Builder

	title := "COMPLETED PAYMENTS REPORT"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRANSACTION ID\tAMOUNT\tMETHOD\tSTATUS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.TransactionID, row.Amount, row.PaymentMethod, row.Status)
	}
	w.Flush()

	b.WriteString(fmt.Sprintf("\nTotal records: %d\n", len(rows)))
	b.WriteString(fmt.Sprintf("Generated at: %s\n", generatedAt.Format("2006-01-02 15:04:05")))

	return b.String()
}
