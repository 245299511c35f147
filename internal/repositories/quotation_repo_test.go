package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func quotationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "codigo", "cliente_id", "empresa_id", "status",
		"valor_total", "forma_pagamento", "observacoes", "custos_extras",
	})
}

func TestQuotationGetByNumericKeyMatchesIDOrCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM cotacoes").
		WithArgs(int64(42), "42").
		WillReturnRows(quotationRows().
			AddRow(42, "COT-2026-042", 9, 2, "aprovada", 5400.90, "Pix", "obs", `[{"descricao":"Seguro viagem","valor":120.5}]`))

	repo := QuotationRepository{DB: db}
	q, err := repo.GetByIDOrCode("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != 42 || q.Codigo != "COT-2026-042" {
		t.Fatalf("wrong quotation: %+v", q)
	}
	if len(q.CustosExtras) != 1 || q.CustosExtras[0].Descricao != "Seguro viagem" {
		t.Fatalf("custos_extras not parsed: %+v", q.CustosExtras)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuotationGetByCodeOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM cotacoes").
		WithArgs("COT-X").
		WillReturnRows(quotationRows().
			AddRow(7, "COT-X", 0, 0, "rascunho", 0, "", "", ""))

	repo := QuotationRepository{DB: db}
	q, err := repo.GetByIDOrCode(" COT-X ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != 7 {
		t.Fatalf("wrong quotation: %+v", q)
	}
	if len(q.CustosExtras) != 0 {
		t.Fatalf("blank custos_extras must decode empty: %+v", q.CustosExtras)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuotationGetMissingSurfacesNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM cotacoes").
		WithArgs("NADA").
		WillReturnRows(quotationRows())

	repo := QuotationRepository{DB: db}
	if _, err := repo.GetByIDOrCode("NADA"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestQuotationBrokenExtrasDoNotBlock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM cotacoes").
		WithArgs("COT-Y").
		WillReturnRows(quotationRows().
			AddRow(8, "COT-Y", 0, 0, "emitida", 100, "", "", `{"nao":"e lista"`))

	repo := QuotationRepository{DB: db}
	q, err := repo.GetByIDOrCode("COT-Y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.CustosExtras) != 0 {
		t.Fatalf("broken extras must decode empty, got %+v", q.CustosExtras)
	}
}
