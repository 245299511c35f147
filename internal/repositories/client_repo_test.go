package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListPassengersProfileFillsBlanks(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "cotacao_id", "cliente_id",
		"nome", "sobrenome", "documento", "nascimento",
		"c_nome", "c_sobrenome", "c_documento", "c_nascimento",
	}).
		// own fields win over the joined profile
		AddRow(1, 5, 9, "Ana", "", "123.456.789-00", "", "Ana Maria", "Souza", "000.000.000-00", "1990-04-12").
		// no profile at all: LEFT JOIN columns come back blank
		AddRow(2, 5, 0, "Bruno", "Lima", "", "", "", "", "", "")

	mock.ExpectQuery("FROM passageiros").WithArgs(int64(5)).WillReturnRows(rows)

	repo := ClientRepository{DB: db}
	out, err := repo.ListPassengersForQuotation(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 passengers, got %d", len(out))
	}

	first := out[0]
	if first.Nome != "Ana" {
		t.Fatalf("passenger's own name must win: %q", first.Nome)
	}
	if first.Sobrenome != "Souza" || first.Nascimento != "1990-04-12" {
		t.Fatalf("profile must fill blanks: %+v", first)
	}
	if first.Documento != "123.456.789-00" {
		t.Fatalf("own document must win: %q", first.Documento)
	}

	second := out[1]
	if second.Nome != "Bruno" || second.Documento != "" {
		t.Fatalf("unlinked passenger altered: %+v", second)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListClientsSearchUsesLike(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM clientes").
		WithArgs("%ana%", "%ana%", "%ana%", 200).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "nome", "sobrenome", "documento", "nascimento", "email", "telefone",
		}).AddRow(9, "Ana Maria", "Souza", "000.000.000-00", "1990-04-12", "ana@example.com", "11 99999-0000"))

	repo := ClientRepository{DB: db}
	out, err := repo.ListClients("ana", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Nome != "Ana Maria" {
		t.Fatalf("search result wrong: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
