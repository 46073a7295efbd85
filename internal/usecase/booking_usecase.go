package usecase

import (
	"context"
	"errors"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/pkg/cpf"
	"clinic-booking-api/pkg/pricing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCPF        = errors.New("invalid CPF")
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDate          = errors.New("cannot book a past date")
	ErrProcedureNotFound = errors.New("procedure not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrLocationClosed    = errors.New("location is not open on the requested date")
	ErrUnknownOption     = errors.New("selection does not belong to the procedure")
)

// BookingNotifier lets the booking flow fire a confirmation message without
// depending on the notification vertical. Failures are absorbed: a booking
// never fails because a message did not go out.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, appointment *entity.Appointment)
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListProcedures(ctx context.Context) (*dto.ProcedureListResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clientRepo      repository.ClientRepository
	procedureRepo   repository.ProcedureRepository
	locationRepo    repository.LocationRepository
	appointmentRepo repository.AppointmentRepository
	calendar        *service.CalendarService
	notifier        BookingNotifier
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	procedureRepo repository.ProcedureRepository,
	locationRepo repository.LocationRepository,
	appointmentRepo repository.AppointmentRepository,
	calendar *service.CalendarService,
	notifier BookingNotifier,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		clientRepo:      clientRepo,
		procedureRepo:   procedureRepo,
		locationRepo:    locationRepo,
		appointmentRepo: appointmentRepo,
		calendar:        calendar,
		notifier:        notifier,
	}
}

// CreateBooking runs the public booking flow:
// validate CPF and date, check the location is open on the requested day,
// price the selections against the procedure's discount tiers, then create
// the client (if new) and the anchor appointment in one transaction.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if !cpf.IsValid(req.CPF) {
		return nil, ErrInvalidCPF
	}
	if len(req.Date) != 10 || req.Date[4] != '-' || req.Date[7] != '-' {
		return nil, ErrInvalidDate
	}
	if req.Date < u.calendar.Today(ctx) {
		return nil, ErrPastDate
	}

	db := u.db.WithContext(ctx)

	procedure, err := u.procedureRepo.FindByID(db, req.ProcedureID)
	if err != nil {
		u.log.Warnf("Failed to find procedure %s: %+v", req.ProcedureID, err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrProcedureNotFound
	}

	location, err := u.locationRepo.FindByID(db, req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", req.LocationID, err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	if len(entity.OpenPeriodsOn(req.Date, location.Periods)) == 0 {
		return nil, ErrLocationClosed
	}

	selections, items, err := u.mapSelections(req, procedure)
	if err != nil {
		return nil, err
	}
	quote := quoteFor(procedure, selections)

	var appointment *entity.Appointment
	err = db.Transaction(func(tx *gorm.DB) error {
		client, err := u.findOrCreateClient(tx, req)
		if err != nil {
			return err
		}

		finalTotal := quote.FinalTotal
		appointment = &entity.Appointment{
			ClientID:      client.ID,
			ProcedureID:   procedure.ID,
			LocationID:    location.ID,
			Date:          req.Date,
			Time:          req.Time,
			Status:        entity.AppointmentStatusScheduled,
			SessionNumber: 1,
			TotalSessions: procedure.TotalSessions,
			PaymentStatus: entity.PaymentStatusAwaiting,
			PaymentValue:  &finalTotal,
			Items:         items,
		}
		return u.appointmentRepo.Create(tx, appointment)
	})
	if err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.NotifyBookingCreated(ctx, appointment)
	}

	resp := &dto.BookingResponse{
		AppointmentID: appointment.ID,
		Date:          appointment.Date,
		DisplayDate:   u.calendar.ToDisplayDate(appointment.Date),
		Time:          appointment.Time,
		LocationName:  location.Name,
		ProcedureName: procedure.Name,
		TotalSessions: procedure.TotalSessions,
		Quote: dto.QuoteResponse{
			Subtotal:   quote.Subtotal.StringFixed(2),
			Discount:   quote.Discount.StringFixed(2),
			FinalTotal: quote.FinalTotal.StringFixed(2),
		},
	}
	if quote.AppliedRule != nil {
		resp.Quote.DiscountPercentage = quote.AppliedRule.DiscountPercentage.StringFixed(2)
	}
	return resp, nil
}

func (u *bookingUsecase) ListProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	procedures, err := u.procedureRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list procedures: %+v", err)
		return nil, err
	}

	return &dto.ProcedureListResponse{
		Procedures: converter.ProceduresToResponses(procedures),
		Total:      len(procedures),
	}, nil
}

// mapSelections resolves the requested option ids against the procedure's
// own options, producing both the pricing input and the persisted items.
func (u *bookingUsecase) mapSelections(req *dto.CreateBookingRequest, procedure *entity.Procedure) ([]pricing.Selection, []entity.AppointmentItem, error) {
	byID := make(map[string]entity.ProcedureOption, len(procedure.Options))
	for _, opt := range procedure.Options {
		byID[opt.ID.String()] = opt
	}

	selections := make([]pricing.Selection, 0, len(req.Selections))
	items := make([]entity.AppointmentItem, 0, len(req.Selections))
	for _, sel := range req.Selections {
		opt, ok := byID[sel.OptionID.String()]
		if !ok {
			return nil, nil, ErrUnknownOption
		}
		selections = append(selections, pricing.Selection{
			Kind:      pricing.SelectionKind(opt.Kind),
			ID:        opt.ID.String(),
			UnitPrice: opt.UnitPrice,
		})
		items = append(items, entity.AppointmentItem{
			Kind:      opt.Kind,
			Name:      opt.Name,
			UnitPrice: opt.UnitPrice,
		})
	}
	return selections, items, nil
}

// quoteFor prices the booking. Without selections the procedure's flat list
// price applies and no tier can match.
func quoteFor(procedure *entity.Procedure, selections []pricing.Selection) pricing.Quote {
	if len(selections) == 0 {
		return pricing.Quote{
			Subtotal:   procedure.Price,
			Discount:   decimal.Zero,
			FinalTotal: procedure.Price,
		}
	}

	rules := make([]pricing.Rule, 0, len(procedure.DiscountRules))
	for _, r := range procedure.DiscountRules {
		rules = append(rules, pricing.Rule{
			MinGroups:          r.MinGroups,
			MaxGroups:          r.MaxGroups,
			DiscountPercentage: r.DiscountPercentage,
		})
	}
	return pricing.ApplyDiscount(selections, rules)
}

func (u *bookingUsecase) findOrCreateClient(tx *gorm.DB, req *dto.CreateBookingRequest) (*entity.Client, error) {
	cleanCPF := cpf.Clean(req.CPF)
	client, err := u.clientRepo.FindByCPF(tx, cleanCPF)
	if err != nil {
		return nil, err
	}
	if client != nil {
		// Returning clients refresh their contact details.
		client.FullName = req.ClientName
		client.PhoneNumber = req.PhoneNumber
		if req.Email != "" {
			client.Email = req.Email
		}
		if err := u.clientRepo.Update(tx, client); err != nil {
			return nil, err
		}
		return client, nil
	}

	client = &entity.Client{
		FullName:    req.ClientName,
		CPF:         cleanCPF,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if err := u.clientRepo.Create(tx, client); err != nil {
		return nil, err
	}
	return client, nil
}
