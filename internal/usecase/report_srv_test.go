package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedPayment(t *testing.T, repo *memPaymentRepo, txn string, amount float64, method entity.PaymentMethod, status entity.PaymentStatus) {
	t.Helper()
	err := repo.Create(context.Background(), &entity.Payment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrderID:       uuid.New(),
		Amount:        amount,
		Method:        method,
		Status:        status,
		TransactionID: txn,
	})
	if err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}

func TestReportEmpty(t *testing.T) {
	payments := newMemPaymentRepo()
	svc := NewReportService(payments, zap.NewNop())

	_, err := svc.BuildCompletedReport(context.Background())
	if !errors.Is(err, apperr.ErrEmptyReport) {
		t.Fatalf("BuildCompletedReport() on empty store error = %v, want empty-report", err)
	}

	// Pending and failed records alone still yield the empty signal.
	seedPayment(t, payments, "TXN-1", 10, entity.PaymentMethodCard, entity.PaymentStatusPending)
	seedPayment(t, payments, "TXN-2", 20, entity.PaymentMethodCash, entity.PaymentStatusFailed)

	_, err = svc.BuildCompletedReport(context.Background())
	if !errors.Is(err, apperr.ErrEmptyReport) {
		t.Fatalf("BuildCompletedReport() without completed rows error = %v, want empty-report", err)
	}
}

func TestReportRowsAndFormatting(t *testing.T) {
	payments := newMemPaymentRepo()
	svc := NewReportService(payments, zap.NewNop())

	seedPayment(t, payments, "TXN-A", 25.5, entity.PaymentMethodCard, entity.PaymentStatusCompleted)
	seedPayment(t, payments, "TXN-B", 9, entity.PaymentMethodCash, entity.PaymentStatusPending)
	seedPayment(t, payments, "TXN-C", 100, entity.PaymentMethodCash, entity.PaymentStatusCompleted)
	seedPayment(t, payments, "TXN-D", 3.333, entity.PaymentMethodCard, entity.PaymentStatusCompleted)

	report, err := svc.BuildCompletedReport(context.Background())
	if err != nil {
		t.Fatalf("BuildCompletedReport() error = %v", err)
	}

	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3 completed payments", len(report.Rows))
	}

	// Creation order, pending row excluded.
	wantTxns := []string{"TXN-A", "TXN-C", "TXN-D"}
	wantAmounts := []string{"25.50", "100.00", "3.33"}
	for i, row := range report.Rows {
		if row.TransactionID != wantTxns[i] {
			t.Errorf("row %d transaction = %s, want %s", i, row.TransactionID, wantTxns[i])
		}
		if row.Amount != wantAmounts[i] {
			t.Errorf("row %d amount = %s, want %s", i, row.Amount, wantAmounts[i])
		}
		if row.Status != string(entity.PaymentStatusCompleted) {
			t.Errorf("row %d status = %s, want completed", i, row.Status)
		}
	}
}

func TestReportDocumentLayout(t *testing.T) {
	payments := newMemPaymentRepo()
	svc := NewReportService(payments, zap.NewNop())

	seedPayment(t, payments, "TXN-A", 25.5, entity.PaymentMethodCard, entity.PaymentStatusCompleted)
	seedPayment(t, payments, "TXN-B", 100, entity.PaymentMethodCash, entity.PaymentStatusCompleted)

	report, err := svc.BuildCompletedReport(context.Background())
	if err != nil {
		t.Fatalf("BuildCompletedReport() error = %v", err)
	}

	doc := report.Document
	if !strings.HasPrefix(doc, "COMPLETED PAYMENTS REPORT\n") {
		t.Errorf("document missing title header:\n%s", doc)
	}
	for _, want := range []string{
		"TRANSACTION ID",
		"TXN-A",
		"25.50",
		"TXN-B",
		"100.00",
		"Total records: 2",
		"Generated at: " + report.GeneratedAt.Format("2006-01-02 15:04:05"),
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	// The title row comes before the data rows, and data rows keep
	// creation order.
	if strings.Index(doc, "TXN-A") > strings.Index(doc, "TXN-B") {
		t.Error("document rows out of creation order")
	}
}

func TestReportIsReadOnly(t *testing.T) {
	payments := newMemPaymentRepo()
	svc := NewReportService(payments, zap.NewNop())

	seedPayment(t, payments, "TXN-A", 25.5, entity.PaymentMethodCard, entity.PaymentStatusCompleted)

	first, err := svc.BuildCompletedReport(context.Background())
	if err != nil {
		t.Fatalf("first BuildCompletedReport() error = %v", err)
	}
	second, err := svc.BuildCompletedReport(context.Background())
	if err != nil {
		t.Fatalf("second BuildCompletedReport() error = %v", err)
	}

	if len(first.Rows) != len(second.Rows) {
		t.Fatalf("row count changed between builds: %d vs %d", len(first.Rows), len(second.Rows))
	}
	for i := range first.Rows {
		if first.Rows[i] != second.Rows[i] {
			t.Errorf("row %d changed between builds: %+v vs %+v", i, first.Rows[i], second.Rows[i])
		}
	}
}
