package repositories

import (
	"database/sql"
	"strings"

	intconfig "agencybackend/internal/config"
	intdb "agencybackend/internal/db"
	"agencybackend/internal/domain/models"
)

type FlightRepository struct {
	DB *sql.DB
}

func (r FlightRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListLegsForQuotation returns the purchased legs of a quotation in stored
// order. Missing legs are an empty list, never an error.
func (r FlightRepository) ListLegsForQuotation(cotacaoID int64) ([]models.FlightLeg, error) {
	db := r.db()
	if db == nil || cotacaoID <= 0 {
		return []models.FlightLeg{}, nil
	}

	rows, err := db.Query(`
		SELECT id,
			   COALESCE(cotacao_id,0),
			   COALESCE(tipo,''),
			   COALESCE(companhia,''),
			   COALESCE(numero_voo,''),
			   COALESCE(origem,''),
			   COALESCE(destino,''),
			   COALESCE(data_partida,''),
			   COALESCE(partida,''),
			   COALESCE(data_chegada,''),
			   COALESCE(chegada,''),
			   COALESCE(classe,''),
			   COALESCE(bagagem,''),
			   COALESCE(valor,0),
			   COALESCE(dados_json,'')
		FROM voos
		WHERE cotacao_id=?
		ORDER BY id ASC`, cotacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FlightLeg{}
	for rows.Next() {
		var leg models.FlightLeg
		if err := rows.Scan(
			&leg.ID, &leg.CotacaoID, &leg.Tipo,
			&leg.Companhia, &leg.NumeroVoo,
			&leg.Origem, &leg.Destino,
			&leg.DataPartida, &leg.Partida,
			&leg.DataChegada, &leg.Chegada,
			&leg.Classe, &leg.Bagagem, &leg.Valor,
			&leg.DadosJSON,
		); err != nil {
			return out, err
		}
		leg.Tipo = strings.ToLower(strings.TrimSpace(leg.Tipo))
		out = append(out, leg)
	}
	return out, rows.Err()
}

// ListOptionsAndSegments fetches the normalized alternatives of a quotation
// in two queries: options by cotacao_id, then segments filtered by the
// option id set. Installs that predate these tables get empty lists.
func (r FlightRepository) ListOptionsAndSegments(cotacaoID int64) ([]models.QuoteOption, []models.OptionSegment, error) {
	db := r.db()
	if db == nil || cotacaoID <= 0 {
		return []models.QuoteOption{}, []models.OptionSegment{}, nil
	}
	if !intdb.HasTable(db, "cotacao_opcoes") || !intdb.HasTable(db, "opcao_segmentos") {
		return []models.QuoteOption{}, []models.OptionSegment{}, nil
	}

	options, err := r.listOptions(db, cotacaoID)
	if err != nil {
		return nil, nil, err
	}
	if len(options) == 0 {
		return options, []models.OptionSegment{}, nil
	}

	ids := make([]any, 0, len(options))
	ph := make([]string, 0, len(options))
	for _, opt := range options {
		ids = append(ids, opt.ID)
		ph = append(ph, "?")
	}

	rows, err := db.Query(`
		SELECT id,
			   COALESCE(opcao_id,0),
			   COALESCE(ordem,0),
			   COALESCE(companhia,''),
			   COALESCE(numero_voo,''),
			   COALESCE(origem,''),
			   COALESCE(destino,''),
			   COALESCE(partida,''),
			   COALESCE(chegada,'')
		FROM opcao_segmentos
		WHERE opcao_id IN (`+strings.Join(ph, ",")+`)
		ORDER BY opcao_id ASC, ordem ASC`, ids...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	segments := []models.OptionSegment{}
	for rows.Next() {
		var s models.OptionSegment
		if err := rows.Scan(
			&s.ID, &s.OpcaoID, &s.Ordem,
			&s.Companhia, &s.NumeroVoo,
			&s.Origem, &s.Destino,
			&s.Partida, &s.Chegada,
		); err != nil {
			return options, segments, err
		}
		segments = append(segments, s)
	}
	return options, segments, rows.Err()
}

func (r FlightRepository) listOptions(db *sql.DB, cotacaoID int64) ([]models.QuoteOption, error) {
	rows, err := db.Query(`
		SELECT id,
			   COALESCE(cotacao_id,0),
			   COALESCE(voo_id,0),
			   COALESCE(descricao,''),
			   COALESCE(valor,0)
		FROM cotacao_opcoes
		WHERE cotacao_id=?
		ORDER BY id ASC`, cotacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.QuoteOption{}
	for rows.Next() {
		var opt models.QuoteOption
		if err := rows.Scan(&opt.ID, &opt.CotacaoID, &opt.VooID, &opt.Descricao, &opt.Valor); err != nil {
			return out, err
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}
