package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gorm.io/datatypes"

	"github.com/dzoniops/booking-service/calendar"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/notify"
	"github.com/dzoniops/booking-service/repository"
	"github.com/dzoniops/booking-service/utils"
)

const DefaultRetentionDays = 90

// CreateReservation is a booking request. When the guest counts are set the
// price is quoted here, otherwise PriceBreakdown is stored as given.
type CreateReservation struct {
	RoomId         int64                  `json:"room_id"         validate:"gt=0"`
	UserId         int64                  `json:"user_id"         validate:"gte=0"`
	Rooms          int                    `json:"rooms"           validate:"gte=1"`
	CheckIn        string                 `json:"check_in"        validate:"required,ddmmyyyy"`
	CheckOut       string                 `json:"check_out"       validate:"required,ddmmyyyy"`
	Mode           models.BookingMode     `json:"mode"            validate:"omitempty,booking-mode"`
	Email          string                 `json:"email"           validate:"omitempty,email"`
	Phone          string                 `json:"phone"`
	GuestDetails   models.GuestDetails    `json:"guest_details"`
	Adults         int                    `json:"adults"          validate:"gte=0"`
	Children       int                    `json:"children"        validate:"gte=0"`
	TotalDays      int                    `json:"total_days"      validate:"gte=0"`
	Extras         []string               `json:"extras"`
	PriceBreakdown *models.PriceBreakdown `json:"price_breakdown"`
}

type FeedbackInput struct {
	Rating    float64 `json:"rating"     validate:"gte=0,lte=5"`
	Review    string  `json:"review"`
	GuestName string  `json:"guest_name"`
}

// UpdateReservation is a partial update. Nil fields are left untouched.
type UpdateReservation struct {
	CheckIn       *string                   `json:"check_in"       validate:"omitempty,ddmmyyyy"`
	CheckOut      *string                   `json:"check_out"      validate:"omitempty,ddmmyyyy"`
	Rooms         *int                      `json:"rooms"          validate:"omitempty,gte=1"`
	Status        *models.ReservationStatus `json:"status"`
	PaymentStatus *models.PaymentStatus     `json:"payment_status"`
	Email         *string                   `json:"email"          validate:"omitempty,email"`
	Phone         *string                   `json:"phone"`
	GuestDetails  *models.GuestDetails      `json:"guest_details"`
	Feedback      *FeedbackInput            `json:"feedback"`
}

func (u UpdateReservation) onlyFeedback() bool {
	return u.Feedback != nil &&
		u.CheckIn == nil && u.CheckOut == nil && u.Rooms == nil &&
		u.Status == nil && u.PaymentStatus == nil &&
		u.Email == nil && u.Phone == nil && u.GuestDetails == nil
}

type Publisher interface {
	Publish(ctx context.Context, ev notify.Event) error
}

type ReservationService struct {
	store         repository.ReservationRepository
	catalog       Catalog
	checker       *AvailabilityChecker
	pricer        *Pricer
	authz         Authorizer
	outbox        Publisher
	clock         Clock
	metrics       *Metrics
	logger        log.Logger
	retentionDays int
}

type ServiceOption func(*ReservationService)

func WithClock(c Clock) ServiceOption {
	return func(s *ReservationService) { s.clock = c }
}

func WithAuthorizer(a Authorizer) ServiceOption {
	return func(s *ReservationService) { s.authz = a }
}

func WithPublisher(p Publisher) ServiceOption {
	return func(s *ReservationService) { s.outbox = p }
}

func WithMetrics(m *Metrics) ServiceOption {
	return func(s *ReservationService) { s.metrics = m }
}

func WithLogger(l log.Logger) ServiceOption {
	return func(s *ReservationService) { s.logger = l }
}

func WithRetentionDays(days int) ServiceOption {
	return func(s *ReservationService) {
		if days > 0 {
			s.retentionDays = days
		}
	}
}

func NewReservationService(
	store repository.ReservationRepository,
	catalog Catalog,
	opts ...ServiceOption,
) *ReservationService {
	s := &ReservationService{
		store:         store,
		catalog:       catalog,
		authz:         RolePolicy{},
		clock:         SystemClock,
		logger:        log.NewNopLogger(),
		retentionDays: DefaultRetentionDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = log.With(s.logger, "component", "reservations")
	s.checker = NewAvailabilityChecker(catalog, store, s.metrics, s.logger)
	s.pricer = NewPricer(catalog, s.metrics)
	return s
}

func (s *ReservationService) Checker() *AvailabilityChecker { return s.checker }

func (s *ReservationService) Pricer() *Pricer { return s.pricer }

// Create books a room. The availability check and the insert run in one
// transaction holding the room lock, so concurrent bookings cannot overbook.
func (s *ReservationService) Create(
	ctx context.Context,
	actor models.Actor,
	req CreateReservation,
) (*models.Reservation, error) {
	if err := utils.Validate.Struct(req); err != nil {
		return nil, wrapError(ValidationError, err, "invalid reservation")
	}
	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	room, err := s.catalog.GetRoom(ctx, req.RoomId)
	if err != nil {
		return nil, lookupError(err, "room %d", req.RoomId)
	}
	property, err := s.catalog.GetProperty(ctx, room.PropertyId)
	if err != nil {
		return nil, lookupError(err, "property %d", room.PropertyId)
	}

	breakdown, err := s.breakdownFor(room, property, stay, req)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = models.ModeOnline
	}
	r := &models.Reservation{
		RoomId:         room.ID,
		PropertyId:     room.PropertyId,
		UserId:         actor.ID,
		Rooms:          req.Rooms,
		BookingDate:    s.clock.Now().UTC(),
		CheckIn:        stay.Start,
		CheckOut:       stay.End,
		Status:         models.StatusBooked,
		PaymentStatus:  models.PaymentDue,
		Mode:           mode,
		BookedBy:       actor.Username,
		Email:          req.Email,
		Phone:          req.Phone,
		GuestDetails:   req.GuestDetails,
		PriceBreakdown: datatypes.NewJSONType(breakdown),
		GrandTotal:     breakdown.GrandTotal,
	}
	if mode == models.ModeOffline {
		r.Type = string(actor.Role)
	}
	if req.UserId != 0 && (actor.IsAdmin() || actor.Manages()) {
		r.UserId = req.UserId
	}
	r.SetBookedDates(stay.Days())

	err = s.store.WithinRoomLock(ctx, room.ID, func(tx repository.ReservationRepository) error {
		if _, err := s.checker.Evaluate(ctx, tx, room, req.Rooms, stay); err != nil {
			return err
		}
		return tx.Create(ctx, r)
	})
	if err != nil {
		return nil, asInternal(err, "create reservation")
	}

	s.metrics.created()
	level.Info(s.logger).Log("msg", "reservation created", "id", r.ID, "room", r.RoomId, "rooms", r.Rooms,
		"check_in", calendar.Format(r.CheckIn), "check_out", calendar.Format(r.CheckOut))
	s.publish(ctx, notify.NewReservationCreated(*r, property.Name, s.clock.Now()))
	return r, nil
}

func (s *ReservationService) breakdownFor(
	room *models.Room,
	property *models.Property,
	stay calendar.Range,
	req CreateReservation,
) (models.PriceBreakdown, error) {
	if req.Adults == 0 && req.Children == 0 {
		if req.PriceBreakdown != nil {
			return *req.PriceBreakdown, nil
		}
		return models.PriceBreakdown{}, nil
	}
	in := QuoteInput{
		Adults:     req.Adults,
		Children:   req.Children,
		TotalRooms: req.Rooms,
		TotalDays:  req.TotalDays,
	}
	if in.TotalDays == 0 {
		in.TotalDays = stay.Nights()
	}
	extras, err := resolveExtras(property, req.Extras)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	in.Extras = extras
	b, err := Quote(room, in)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	s.metrics.quoted()
	return *b, nil
}

// publish hands the event to the outbox. A failed publish never fails the booking.
func (s *ReservationService) publish(ctx context.Context, ev notify.Event) {
	if s.outbox == nil {
		return
	}
	if err := s.outbox.Publish(ctx, ev); err != nil {
		s.metrics.Notified("dropped")
		level.Warn(s.logger).Log("msg", "publish event", "event", ev.ID, "kind", ev.Kind, "err", err)
		return
	}
	s.metrics.Notified("published")
}

func (s *ReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "reservation %d", id)
	}
	return r, nil
}

// View returns a reservation the actor is allowed to see.
func (s *ReservationService) View(ctx context.Context, id int64, actor models.Actor) (*models.Reservation, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, ActionView, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReservationService) Update(
	ctx context.Context,
	id int64,
	patch UpdateReservation,
	actor models.Actor,
) (*models.Reservation, error) {
	if err := utils.Validate.Struct(patch); err != nil {
		return nil, wrapError(ValidationError, err, "invalid update")
	}
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "reservation %d", id)
	}

	action := ActionUpdate
	if patch.onlyFeedback() {
		action = ActionFeedback
	}
	if err := s.authorize(ctx, actor, action, r); err != nil {
		return nil, err
	}

	replaceDates, err := applyPatch(r, patch)
	if err != nil {
		return nil, err
	}
	var fb *models.Feedback
	if patch.Feedback != nil {
		fb = &models.Feedback{
			ReservationId: r.ID,
			Rating:        patch.Feedback.Rating,
			Review:        patch.Feedback.Review,
			GuestName:     patch.Feedback.GuestName,
		}
	}

	err = s.store.WithinTx(ctx, func(tx repository.ReservationRepository, txCatalog repository.CatalogRepository) error {
		if err := tx.Update(ctx, r, replaceDates); err != nil {
			return wrapError(Internal, err, "update reservation %d", id)
		}
		if fb == nil {
			return nil
		}
		if err := tx.AddFeedback(ctx, fb); err != nil {
			return wrapError(Internal, err, "save feedback for reservation %d", id)
		}
		// The rating goes last: a remote failure rolls back the patch and the feedback.
		rater := s.catalog
		if _, local := s.catalog.(repository.CatalogRepository); local {
			rater = txCatalog
		}
		if err := rater.RecordRating(ctx, r.PropertyId, fb.Rating); err != nil {
			return lookupError(err, "property %d", r.PropertyId)
		}
		return nil
	})
	if err != nil {
		return nil, asInternal(err, "update reservation")
	}
	if fb != nil {
		r.Feedback = fb
	}
	return r, nil
}

// applyPatch mutates r and reports whether the booked dates were rebuilt.
func applyPatch(r *models.Reservation, patch UpdateReservation) (bool, error) {
	replaceDates := false
	if patch.CheckIn != nil || patch.CheckOut != nil {
		in, out := calendar.Format(r.CheckIn), calendar.Format(r.CheckOut)
		if patch.CheckIn != nil {
			in = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			out = *patch.CheckOut
		}
		stay, err := parseStay(in, out)
		if err != nil {
			return false, err
		}
		r.CheckIn, r.CheckOut = stay.Start, stay.End
		replaceDates = true
	}
	if patch.Rooms != nil && *patch.Rooms != r.Rooms {
		r.Rooms = *patch.Rooms
		replaceDates = true
	}
	if replaceDates {
		r.SetBookedDates(calendar.Range{Start: r.CheckIn, End: r.CheckOut}.Days())
	}

	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return false, newError(ValidationError, "unknown status %q", next)
		}
		if !r.Status.CanTransition(next) {
			return false, newError(InvalidTransition, "status cannot change from %s to %s", r.Status, next)
		}
		r.Status = next
	}
	if patch.PaymentStatus != nil {
		next := *patch.PaymentStatus
		if !next.Valid() {
			return false, newError(ValidationError, "unknown payment status %q", next)
		}
		if !r.PaymentStatus.CanTransition(next) {
			return false, newError(InvalidTransition, "payment status cannot change from %s to %s", r.PaymentStatus, next)
		}
		r.PaymentStatus = next
	}
	if patch.Email != nil {
		r.Email = *patch.Email
	}
	if patch.Phone != nil {
		r.Phone = *patch.Phone
	}
	if patch.GuestDetails != nil {
		r.GuestDetails = *patch.GuestDetails
	}
	if patch.Feedback != nil && r.Feedback != nil {
		return false, newError(ValidationError, "feedback for reservation %d was already submitted", r.ID)
	}
	return replaceDates, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int64, actor models.Actor) error {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return lookupError(err, "reservation %d", id)
	}
	if err := s.authorize(ctx, actor, ActionDelete, r); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return lookupError(err, "reservation %d", id)
	}
	level.Info(s.logger).Log("msg", "reservation deleted", "id", id, "by", actor.ID)
	return nil
}

func (s *ReservationService) authorize(
	ctx context.Context,
	actor models.Actor,
	action Action,
	r *models.Reservation,
) error {
	property, err := s.catalog.GetProperty(ctx, r.PropertyId)
	if err != nil {
		if err = lookupError(err, "property %d", r.PropertyId); KindOf(err) != NotFound {
			return err
		}
		property = nil
	}
	res := ReservationResource{Reservation: r, Property: property}
	if !s.authz.CanAct(actor, action, res) {
		return newError(AccessDenied, "user %d may not %s reservation %d", actor.ID, action, r.ID)
	}
	return nil
}

// List reads reservations and purges those past the retention window on the
// way; purged rows are never returned.
func (s *ReservationService) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	if filter.OwnerId != 0 && filter.PropertyIds == nil {
		ids, err := s.catalog.PropertiesOwnedBy(ctx, filter.OwnerId)
		if err != nil {
			return nil, asInternal(err, "list properties of owner")
		}
		if len(ids) == 0 {
			return []models.Reservation{}, nil
		}
		filter.PropertyIds = ids
	}

	reservations, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, wrapError(Internal, err, "list reservations")
	}

	now := today(s.clock)
	kept := reservations[:0]
	var expired []int64
	for _, r := range reservations {
		if calendar.DaysBetween(r.CheckIn, now) > s.retentionDays {
			expired = append(expired, r.ID)
			continue
		}
		kept = append(kept, r)
	}
	if len(expired) > 0 {
		n, err := s.store.DeleteByIDs(ctx, expired)
		if err != nil {
			return nil, wrapError(Internal, err, "purge expired reservations")
		}
		s.metrics.expired(n)
		level.Info(s.logger).Log("msg", "purged expired reservations", "count", n)
	}
	return kept, nil
}

// SweepExpired deletes every reservation whose check-in is older than the retention window.
func (s *ReservationService) SweepExpired(ctx context.Context) (int64, error) {
	cutoff := today(s.clock).AddDate(0, 0, -s.retentionDays)
	n, err := s.store.DeleteCheckedInBefore(ctx, cutoff)
	if err != nil {
		return 0, wrapError(Internal, err, "sweep expired reservations")
	}
	s.metrics.expired(n)
	return n, nil
}

// RunExpirySweep runs SweepExpired every interval until ctx is done.
func (s *ReservationService) RunExpirySweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	level.Info(s.logger).Log("msg", "expiry sweep started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			level.Info(s.logger).Log("msg", "expiry sweep stopped")
			return nil
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				level.Error(s.logger).Log("msg", "expiry sweep", "err", err)
				continue
			}
			if n > 0 {
				level.Info(s.logger).Log("msg", "expired reservations removed", "count", n)
			}
		}
	}
}

// History lists a guest's finished stays, latest check-out first.
func (s *ReservationService) History(ctx context.Context, userID int64) ([]models.Reservation, error) {
	reservations, err := s.List(ctx, models.ReservationFilter{UserId: userID})
	if err != nil {
		return nil, err
	}
	now := today(s.clock)
	history := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if !calendar.Day(r.CheckOut).After(now) {
			history = append(history, r)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CheckOut.After(history[j].CheckOut)
	})
	return history, nil
}

// CancelledDue lists cancelled reservations whose payment is still due.
// ownerID 0 covers every property.
func (s *ReservationService) CancelledDue(ctx context.Context, ownerID int64) ([]models.Reservation, error) {
	reservations, err := s.List(ctx, models.ReservationFilter{OwnerId: ownerID})
	if err != nil {
		return nil, err
	}
	var out []models.Reservation
	for _, r := range reservations {
		if r.Status.Cancelled() && r.PaymentStatus == models.PaymentDue {
			out = append(out, r)
		}
	}
	return out, nil
}

func asInternal(err error, msg string) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return wrapError(Internal, err, msg)
}
