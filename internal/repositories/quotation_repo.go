package repositories

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	intconfig "agencybackend/internal/config"
	"agencybackend/internal/domain/models"
)

type QuotationRepository struct {
	DB *sql.DB
}

func (r QuotationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByIDOrCode fetches one quotation by numeric id or by its codigo.
// Absence surfaces as sql.ErrNoRows; the caller decides the severity.
func (r QuotationRepository) GetByIDOrCode(key string) (models.Quotation, error) {
	db := r.db()
	if db == nil {
		return models.Quotation{}, sql.ErrNoRows
	}

	key = strings.TrimSpace(key)
	where := "codigo=?"
	args := []any{key}
	if id, err := strconv.ParseInt(key, 10, 64); err == nil && id > 0 {
		where = "(id=? OR codigo=?)"
		args = []any{id, key}
	}

	var (
		q      models.Quotation
		extras sql.NullString
	)
	err := db.QueryRow(`
		SELECT id,
			   COALESCE(codigo,''),
			   COALESCE(cliente_id,0),
			   COALESCE(empresa_id,0),
			   COALESCE(status,''),
			   COALESCE(valor_total,0),
			   COALESCE(forma_pagamento,''),
			   COALESCE(observacoes,''),
			   COALESCE(custos_extras,'')
		FROM cotacoes
		WHERE `+where+` LIMIT 1`, args...).Scan(
		&q.ID,
		&q.Codigo,
		&q.ClienteID,
		&q.EmpresaID,
		&q.Status,
		&q.ValorTotal,
		&q.FormaPagamento,
		&q.Observacoes,
		&extras,
	)
	if err != nil {
		return models.Quotation{}, err
	}

	q.CustosExtras = parseExtraCosts(extras.String)
	return q, nil
}

// ListQuotations feeds the back-office list screen. Read-only, newest first.
func (r QuotationRepository) ListQuotations(limit int) ([]models.Quotation, error) {
	db := r.db()
	if db == nil {
		return []models.Quotation{}, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	rows, err := db.Query(`
		SELECT id,
			   COALESCE(codigo,''),
			   COALESCE(cliente_id,0),
			   COALESCE(empresa_id,0),
			   COALESCE(status,''),
			   COALESCE(valor_total,0)
		FROM cotacoes
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Quotation{}
	for rows.Next() {
		var q models.Quotation
		if err := rows.Scan(&q.ID, &q.Codigo, &q.ClienteID, &q.EmpresaID, &q.Status, &q.ValorTotal); err != nil {
			return out, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// parseExtraCosts tolerates blank or broken custos_extras JSON; a bad list
// of extras must not block the quotation.
func parseExtraCosts(raw string) []models.ExtraCost {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []models.ExtraCost{}
	}
	var out []models.ExtraCost
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []models.ExtraCost{}
	}
	return out
}
