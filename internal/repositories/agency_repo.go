package repositories

import (
	"database/sql"

	intconfig "agencybackend/internal/config"
	"agencybackend/internal/domain/models"
)

type AgencyRepository struct {
	DB *sql.DB
}

func (r AgencyRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AgencyRepository) GetByID(id int64) (models.Agency, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.Agency{}, sql.ErrNoRows
	}

	var a models.Agency
	err := db.QueryRow(`
		SELECT id,
			   COALESCE(nome,''),
			   COALESCE(cnpj,''),
			   COALESCE(telefone,''),
			   COALESCE(email,''),
			   COALESCE(logo,''),
			   COALESCE(cor,'')
		FROM empresas
		WHERE id=? LIMIT 1`, id).Scan(
		&a.ID,
		&a.Nome,
		&a.CNPJ,
		&a.Telefone,
		&a.Email,
		&a.Logo,
		&a.Cor,
	)
	if err != nil {
		return models.Agency{}, err
	}
	return a, nil
}
