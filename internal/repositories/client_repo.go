package repositories

import (
	"database/sql"
	"strings"

	intconfig "agencybackend/internal/config"
	"agencybackend/internal/domain/models"
)

type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ClientRepository) GetByID(id int64) (models.Client, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.Client{}, sql.ErrNoRows
	}

	var c models.Client
	err := db.QueryRow(`
		SELECT id,
			   COALESCE(nome,''),
			   COALESCE(sobrenome,''),
			   COALESCE(documento,''),
			   COALESCE(nascimento,''),
			   COALESCE(email,''),
			   COALESCE(telefone,'')
		FROM clientes
		WHERE id=? LIMIT 1`, id).Scan(
		&c.ID,
		&c.Nome,
		&c.Sobrenome,
		&c.Documento,
		&c.Nascimento,
		&c.Email,
		&c.Telefone,
	)
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

func (r ClientRepository) ListClients(search string, limit int) ([]models.Client, error) {
	db := r.db()
	if db == nil {
		return []models.Client{}, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	where := "1=1"
	args := []any{}
	if s := strings.TrimSpace(search); s != "" {
		where = "(nome LIKE ? OR sobrenome LIKE ? OR documento LIKE ?)"
		like := "%" + s + "%"
		args = append(args, like, like, like)
	}
	args = append(args, limit)

	rows, err := db.Query(`
		SELECT id,
			   COALESCE(nome,''),
			   COALESCE(sobrenome,''),
			   COALESCE(documento,''),
			   COALESCE(nascimento,''),
			   COALESCE(email,''),
			   COALESCE(telefone,'')
		FROM clientes
		WHERE `+where+`
		ORDER BY nome ASC
		LIMIT ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Nome, &c.Sobrenome, &c.Documento, &c.Nascimento, &c.Email, &c.Telefone); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListPassengersForQuotation returns the travelers of a quotation already
// enriched by their optional clientes profile: the passenger's own fields
// win, the joined profile only fills blanks.
func (r ClientRepository) ListPassengersForQuotation(cotacaoID int64) ([]models.Passenger, error) {
	db := r.db()
	if db == nil || cotacaoID <= 0 {
		return []models.Passenger{}, nil
	}

	rows, err := db.Query(`
		SELECT p.id,
			   COALESCE(p.cotacao_id,0),
			   COALESCE(p.cliente_id,0),
			   COALESCE(p.nome,''),
			   COALESCE(p.sobrenome,''),
			   COALESCE(p.documento,''),
			   COALESCE(p.nascimento,''),
			   COALESCE(c.nome,''),
			   COALESCE(c.sobrenome,''),
			   COALESCE(c.documento,''),
			   COALESCE(c.nascimento,'')
		FROM passageiros p
		LEFT JOIN clientes c ON c.id = p.cliente_id
		WHERE p.cotacao_id=?
		ORDER BY p.id ASC`, cotacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		var (
			p                                models.Passenger
			cNome, cSobre, cDoc, cNascimento string
		)
		if err := rows.Scan(
			&p.ID, &p.CotacaoID, &p.ClienteID,
			&p.Nome, &p.Sobrenome, &p.Documento, &p.Nascimento,
			&cNome, &cSobre, &cDoc, &cNascimento,
		); err != nil {
			return out, err
		}

		p.Nome = firstNonEmpty(p.Nome, cNome)
		p.Sobrenome = firstNonEmpty(p.Sobrenome, cSobre)
		p.Documento = firstNonEmpty(p.Documento, cDoc)
		p.Nascimento = firstNonEmpty(p.Nascimento, cNascimento)
		out = append(out, p)
	}
	return out, rows.Err()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
