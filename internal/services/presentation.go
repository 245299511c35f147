package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"agencybackend/internal/domain"
	"agencybackend/internal/domain/models"
	"agencybackend/internal/repositories"
	"agencybackend/internal/utils"
)

// PresentationService rebuilds the full quotation view consumed by the
// screen, print and PDF renderers. Stateless per call: two concurrent
// renders of the same quotation get two independently computed models.
type PresentationService struct {
	QuotationRepo repositories.QuotationRepository
	AgencyRepo    repositories.AgencyRepository
	ClientRepo    repositories.ClientRepository
	FlightRepo    repositories.FlightRepository
	RequestID     string

	// Fetch overrides are test seams; when nil the repositories above
	// answer.
	FetchQuotation  func(key string) (models.Quotation, error)
	FetchAgency     func(id int64) (models.Agency, error)
	FetchClient     func(id int64) (models.Client, error)
	FetchPassengers func(cotacaoID int64) ([]models.Passenger, error)
	FetchLegs       func(cotacaoID int64) ([]models.FlightLeg, error)
	FetchOptions    func(cotacaoID int64) ([]models.QuoteOption, []models.OptionSegment, error)
}

// Assemble builds the presentation model for one quotation id or codigo.
// A missing quotation is NotFound; an unreachable store is DataUnavailable;
// every other absence degrades to a placeholder so the document always
// renders something.
func (s PresentationService) Assemble(key string) (models.PresentationModel, error) {
	utils.LogEvent(s.RequestID, "apresentacao", "assemble", "cotacao="+key)

	quotation, err := s.fetchQuotation(key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PresentationModel{}, domain.NotFoundError{Resource: "cotacao", Err: err}
		}
		return models.PresentationModel{}, domain.DataUnavailableError{Resource: "cotacao", Err: err}
	}

	// The remaining fetches only depend on the quotation row; run them
	// concurrently and join before merging.
	var (
		wg sync.WaitGroup

		agency     models.Agency
		client     models.Client
		passengers []models.Passenger
		legs       []models.FlightLeg
		options    []models.QuoteOption
		segments   []models.OptionSegment

		agencyErr, clientErr, passengersErr, legsErr, optionsErr error
	)

	if quotation.EmpresaID > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agency, agencyErr = s.fetchAgency(quotation.EmpresaID)
		}()
	}
	if quotation.ClienteID > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, clientErr = s.fetchClient(quotation.ClienteID)
		}()
	}
	wg.Add(3)
	go func() {
		defer wg.Done()
		passengers, passengersErr = s.fetchPassengers(quotation.ID)
	}()
	go func() {
		defer wg.Done()
		legs, legsErr = s.fetchLegs(quotation.ID)
	}()
	go func() {
		defer wg.Done()
		options, segments, optionsErr = s.fetchOptions(quotation.ID)
	}()
	wg.Wait()

	if err := firstStoreError(agencyErr, clientErr, passengersErr, legsErr, optionsErr); err != nil {
		return models.PresentationModel{}, domain.DataUnavailableError{Resource: "cotacao " + key, Err: err}
	}

	if passengers == nil {
		passengers = []models.Passenger{}
	}

	entries, showPlan := DecodePaymentPlan(quotation.Observacoes)
	if len(entries) == 0 && quotation.FormaPagamento != "" {
		// Pre-directive quotations only carried one flat payment method.
		entries = []models.PaymentPlanEntry{{
			ID:         fmt.Sprintf("legado-%d", quotation.ID),
			FormaPagID: quotation.FormaPagamento,
			Parcelas:   "1",
			Valor:      quotation.ValorTotal,
		}}
	}

	return models.PresentationModel{
		Quotation:  quotation,
		Agency:     agency,
		Palette:    DerivePaletteOrDefault(agency.Cor),
		Client:     client,
		Passengers: passengers,
		Itinerary:  groupItinerary(legs, indexSegmentsByLeg(options, segments)),
		Payments:   entries,
		ShowPlan:   showPlan,
	}, nil
}

// indexSegmentsByLeg maps option segments to their leg through the option's
// voo_id back-reference, giving the resolver O(1) lookup per leg.
func indexSegmentsByLeg(options []models.QuoteOption, segments []models.OptionSegment) map[int64][]models.OptionSegment {
	legByOption := make(map[int64]int64, len(options))
	for _, opt := range options {
		legByOption[opt.ID] = opt.VooID
	}

	out := make(map[int64][]models.OptionSegment, len(options))
	for _, seg := range segments {
		legID := legByOption[seg.OpcaoID]
		if legID <= 0 {
			continue
		}
		out[legID] = append(out[legID], seg)
	}
	return out
}

// groupItinerary buckets resolved legs by direction. A capture payload that
// carries its own tipo overrides the column value, because it reflects the
// originally-quoted direction.
func groupItinerary(legs []models.FlightLeg, segmentsByLeg map[int64][]models.OptionSegment) models.ItineraryGroups {
	groups := models.ItineraryGroups{
		Ida:     []models.ResolvedLeg{},
		Volta:   []models.ResolvedLeg{},
		Interno: []models.ResolvedLeg{},
	}

	for _, leg := range legs {
		tipo := leg.Tipo
		if payload, ok := ParseCapturePayload(leg.DadosJSON); ok && payload.Tipo != "" {
			tipo = payload.Tipo
		}

		resolved := models.ResolvedLeg{
			Leg:      leg,
			Segments: ResolveSegments(leg, segmentsByLeg),
		}

		switch tipo {
		case domain.DirectionReturn:
			groups.Volta = append(groups.Volta, resolved)
		case domain.DirectionInternal:
			groups.Interno = append(groups.Interno, resolved)
		default:
			groups.Ida = append(groups.Ida, resolved)
		}
	}
	return groups
}

// firstStoreError separates "no matching row" (degrade) from a store that
// could not answer (propagate).
func firstStoreError(errs ...error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}
	return nil
}

func (s PresentationService) fetchQuotation(key string) (models.Quotation, error) {
	if s.FetchQuotation != nil {
		return s.FetchQuotation(key)
	}
	return s.QuotationRepo.GetByIDOrCode(key)
}

func (s PresentationService) fetchAgency(id int64) (models.Agency, error) {
	if s.FetchAgency != nil {
		return s.FetchAgency(id)
	}
	return s.AgencyRepo.GetByID(id)
}

func (s PresentationService) fetchClient(id int64) (models.Client, error) {
	if s.FetchClient != nil {
		return s.FetchClient(id)
	}
	return s.ClientRepo.GetByID(id)
}

func (s PresentationService) fetchPassengers(cotacaoID int64) ([]models.Passenger, error) {
	if s.FetchPassengers != nil {
		return s.FetchPassengers(cotacaoID)
	}
	return s.ClientRepo.ListPassengersForQuotation(cotacaoID)
}

func (s PresentationService) fetchLegs(cotacaoID int64) ([]models.FlightLeg, error) {
	if s.FetchLegs != nil {
		return s.FetchLegs(cotacaoID)
	}
	return s.FlightRepo.ListLegsForQuotation(cotacaoID)
}

func (s PresentationService) fetchOptions(cotacaoID int64) ([]models.QuoteOption, []models.OptionSegment, error) {
	if s.FetchOptions != nil {
		return s.FetchOptions(cotacaoID)
	}
	return s.FlightRepo.ListOptionsAndSegments(cotacaoID)
}
