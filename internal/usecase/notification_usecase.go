package usecase

import (
	"context"
	"errors"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("message template not found")
	ErrNoRecipient      = errors.New("client has no contact for the template channel")
)

// MessageSender is the outbound delivery boundary. Implemented by the
// WhatsApp HTTP client and the SMTP mailer; the usecase neither knows nor
// cares which transport sits behind it.
type MessageSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type NotificationUsecase interface {
	Send(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error)
	NotifyBookingCreated(ctx context.Context, appointment *entity.Appointment)
}

type notificationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	templateRepo    repository.TemplateRepository
	resolver        *service.TemplateResolver
	senders         map[entity.MessageChannel]MessageSender
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	templateRepo repository.TemplateRepository,
	resolver *service.TemplateResolver,
	senders map[entity.MessageChannel]MessageSender,
) NotificationUsecase {
	return &notificationUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		templateRepo:    templateRepo,
		resolver:        resolver,
		senders:         senders,
	}
}

// Send renders the named template for an appointment and pushes it through
// the template's channel. A transport failure comes back in the response
// body, not as an error: the caller already has the rendered text.
func (u *notificationUsecase) Send(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	template, err := u.templateRepo.FindByName(db, req.TemplateName)
	if err != nil {
		u.log.Warnf("Failed to find template %q: %+v", req.TemplateName, err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	recipient, err := recipientFor(template.Channel, &appointment.Client)
	if err != nil {
		return nil, err
	}

	vars := u.resolver.AppointmentVariables(ctx, appointment, &appointment.Client, &appointment.Procedure)
	body := u.resolver.Resolve(template.Body, vars, service.LocationInputs{
		Location: &appointment.Location,
	})

	resp := &dto.NotificationResponse{
		AppointmentID: appointment.ID,
		TemplateName:  template.Name,
		Channel:       string(template.Channel),
		Recipient:     recipient,
		Body:          body,
		Sent:          true,
	}

	sender, ok := u.senders[template.Channel]
	if !ok {
		resp.Sent = false
		resp.Error = "no sender configured for channel " + string(template.Channel)
		return resp, nil
	}
	if err := sender.Send(ctx, recipient, template.Subject, body); err != nil {
		u.log.Warnf("Failed to send %s notification for appointment %s: %+v", template.Channel, appointment.ID, err)
		resp.Sent = false
		resp.Error = err.Error()
	}
	return resp, nil
}

// NotifyBookingCreated fires the confirmation message for a fresh booking.
// Implements BookingNotifier; every failure is absorbed so the booking flow
// never fails on messaging.
func (u *notificationUsecase) NotifyBookingCreated(ctx context.Context, appointment *entity.Appointment) {
	resp, err := u.Send(ctx, &dto.SendNotificationRequest{
		AppointmentID: appointment.ID,
		TemplateName:  entity.TemplateBookingConfirmation,
	})
	if err != nil {
		u.log.Warnf("Booking confirmation for appointment %s not sent: %+v", appointment.ID, err)
		return
	}
	if !resp.Sent {
		u.log.Warnf("Booking confirmation for appointment %s not sent: %s", appointment.ID, resp.Error)
	}
}

func recipientFor(channel entity.MessageChannel, client *entity.Client) (string, error) {
	switch channel {
	case entity.ChannelWhatsApp:
		if client.PhoneNumber == "" {
			return "", ErrNoRecipient
		}
		return client.PhoneNumber, nil
	case entity.ChannelEmail:
		if client.Email == "" {
			return "", ErrNoRecipient
		}
		return client.Email, nil
	default:
		return "", ErrNoRecipient
	}
}
