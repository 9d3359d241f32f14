package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stagelink/clients"
	bookingRepo "stagelink/database/repository/booking"
	"stagelink/models"
	"stagelink/services/booking"
	"stagelink/services/svcerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memBookingRepo struct {
	mu         sync.Mutex
	bookings   map[string]*models.Booking
	failCreate error
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) ListByHotel(ctx context.Context, hotelID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.HotelID == hotelID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByArtist(ctx context.Context, artistID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ArtistID == artistID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	b.Status = status
	copied := *b
	return &copied, nil
}

type memRatingRepo struct {
	mu      sync.Mutex
	ratings []models.Rating
}

func (r *memRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings = append(r.ratings, *rating)
	return nil
}

func (r *memRatingRepo) ListByArtist(ctx context.Context, artistID string, visibleOnly bool) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Rating
	for _, rating := range r.ratings {
		if rating.ArtistID != artistID {
			continue
		}
		if visibleOnly && !rating.IsVisibleToArtist {
			continue
		}
		out = append(out, rating)
	}
	return out, nil
}

func (r *memRatingRepo) AverageStarsForArtist(ctx context.Context, artistID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, rating := range r.ratings {
		if rating.ArtistID == artistID {
			sum += rating.Stars
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

type creditCall struct {
	hotelID string
	amount  int64
}

type fakeHotelAPI struct {
	mu       sync.Mutex
	useErr   error
	used     []creditCall
	released []creditCall
}

func (f *fakeHotelAPI) UseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.useErr != nil {
		return nil, f.useErr
	}
	f.used = append(f.used, creditCall{hotelID, amount})
	return &models.CreditBalance{}, nil
}

func (f *fakeHotelAPI) ReleaseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, creditCall{hotelID, amount})
	return &models.CreditBalance{}, nil
}

type statsCall struct {
	artistID      string
	bookingsDelta int64
	earningsDelta int64
}

type fakeArtistAPI struct {
	mu       sync.Mutex
	statsErr error
	stats    []statsCall
	ratings  map[string]float64
}

func (f *fakeArtistAPI) IncrementStats(ctx context.Context, artistID string, bookingsDelta, earningsDelta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return f.statsErr
	}
	f.stats = append(f.stats, statsCall{artistID, bookingsDelta, earningsDelta})
	return nil
}

func (f *fakeArtistAPI) SetAverageRating(ctx context.Context, artistID string, average float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ratings == nil {
		f.ratings = make(map[string]float64)
	}
	f.ratings[artistID] = average
	return nil
}

type recordedNotification struct {
	userID    string
	notifType string
}

type recordNotifier struct {
	mu   sync.Mutex
	sent []recordedNotification
}

func (n *recordNotifier) Notify(ctx context.Context, userID, notifType, message string, data map[string]string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, recordedNotification{userID, notifType})
}

type fixture struct {
	svc      *booking.DefaultBookingService
	repo     *memBookingRepo
	ratings  *memRatingRepo
	hotel    *fakeHotelAPI
	artist   *fakeArtistAPI
	notifier *recordNotifier
}

func newFixture() *fixture {
	f := &fixture{
		repo:     newMemBookingRepo(),
		ratings:  &memRatingRepo{},
		hotel:    &fakeHotelAPI{},
		artist:   &fakeArtistAPI{},
		notifier: &recordNotifier{},
	}
	f.svc = &booking.DefaultBookingService{
		Repo:      f.repo,
		Ratings:   f.ratings,
		HotelAPI:  f.hotel,
		ArtistAPI: f.artist,
		NotifySvc: f.notifier,
		Pricing:   booking.FixedRatePolicy{Rate: 50},
		Logger:    zap.NewNop(),
	}
	return f
}

func validRequest() models.CreateBookingRequest {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return models.CreateBookingRequest{
		HotelID:     "hotel-1",
		ArtistID:    "artist-1",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 3),
		CreditsUsed: 25,
	}
}

func TestCreateBooking_ReservesCreditsThenPersists(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, created.Status)
	assert.NotEmpty(t, created.ID)

	require.Len(t, f.hotel.used, 1)
	assert.Equal(t, creditCall{"hotel-1", 25}, f.hotel.used[0])
	assert.Empty(t, f.hotel.released)

	stored, err := f.repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), stored.CreditsUsed)

	// Both parties get a creation event.
	assert.Len(t, f.notifier.sent, 2)
}

func TestCreateBooking_InsufficientCreditsRejected(t *testing.T) {
	f := newFixture()
	f.hotel.useErr = &clients.ServiceError{
		Service: "hotel",
		Kind:    clients.ErrHTTP4xx,
		Status:  400,
		Message: "Insufficient credits",
	}

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, svcerr.KindValidation, svcerr.KindOf(err))
	assert.Equal(t, "Insufficient credits", svcerr.MessageOf(err))

	// Nothing persisted, nothing to compensate.
	assert.Empty(t, f.repo.bookings)
	assert.Empty(t, f.hotel.released)
}

func TestCreateBooking_HotelServiceDownIsServiceUnavailable(t *testing.T) {
	f := newFixture()

	for _, kind := range []clients.ErrorKind{clients.ErrTimeout, clients.ErrTransport, clients.ErrHTTP5xx} {
		f.hotel.useErr = &clients.ServiceError{Service: "hotel", Kind: kind}

		_, err := f.svc.CreateBooking(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, svcerr.KindDependencyUnavailable, svcerr.KindOf(err))
		assert.Equal(t, 503, svcerr.HTTPStatus(err))
	}
	assert.Empty(t, f.repo.bookings)
}

func TestCreateBooking_CompensatesWhenPersistFails(t *testing.T) {
	f := newFixture()
	f.repo.failCreate = errors.New("write concern error")

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, svcerr.KindInternal, svcerr.KindOf(err))

	// The reservation must not outlive the failed booking.
	require.Len(t, f.hotel.used, 1)
	require.Len(t, f.hotel.released, 1)
	assert.Equal(t, f.hotel.used[0], f.hotel.released[0])
}

func TestCreateBooking_ValidatesInput(t *testing.T) {
	f := newFixture()

	cases := map[string]func(*models.CreateBookingRequest){
		"missing hotel":        func(r *models.CreateBookingRequest) { r.HotelID = "" },
		"missing artist":       func(r *models.CreateBookingRequest) { r.ArtistID = "" },
		"zero credits":         func(r *models.CreateBookingRequest) { r.CreditsUsed = 0 },
		"negative credits":     func(r *models.CreateBookingRequest) { r.CreditsUsed = -3 },
		"end before start":     func(r *models.CreateBookingRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) },
		"start equals end":     func(r *models.CreateBookingRequest) { r.EndDate = r.StartDate },
		"zero start date":      func(r *models.CreateBookingRequest) { r.StartDate = time.Time{} },
	}
	for name, mutate := range cases {
		req := validRequest()
		mutate(&req)
		_, err := f.svc.CreateBooking(context.Background(), req)
		require.Error(t, err, name)
		assert.Equal(t, svcerr.KindValidation, svcerr.KindOf(err), name)
	}

	// Validation failures must never reach the credit ledger.
	assert.Empty(t, f.hotel.used)
}

func TestUpdateBookingStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingRejected, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingRejected, models.BookingConfirmed, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCancelled, models.BookingPending, false},
	}

	for _, tc := range cases {
		f := newFixture()
		created, err := f.svc.CreateBooking(context.Background(), validRequest())
		require.NoError(t, err)
		f.repo.bookings[created.ID].Status = tc.from

		_, err = f.svc.UpdateBookingStatus(context.Background(), created.ID, tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			require.Error(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, svcerr.KindValidation, svcerr.KindOf(err))
		}
	}
}

func TestUpdateBookingStatus_CompletionPaysArtist(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Empty(t, f.artist.stats)

	updated, err := f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	require.Len(t, f.artist.stats, 1)
	assert.Equal(t, statsCall{"artist-1", 1, 25 * 50}, f.artist.stats[0])
}

func TestUpdateBookingStatus_StatsFailureDoesNotFailTransition(t *testing.T) {
	f := newFixture()
	f.artist.statsErr = &clients.ServiceError{Service: "artist", Kind: clients.ErrTransport}

	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingConfirmed)
	require.NoError(t, err)

	updated, err := f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)
}

func TestUpdateBookingStatus_CancellationKeepsCreditsSpent(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingCancelled)
	require.NoError(t, err)

	// Cancellation is not a refund path.
	assert.Empty(t, f.hotel.released)
}

func TestUpdateBookingStatus_UnknownStatusRejected(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingStatus("ARCHIVED"))
	require.Error(t, err)
	assert.Equal(t, svcerr.KindValidation, svcerr.KindOf(err))
}

func completedBooking(t *testing.T, f *fixture) *models.Booking {
	t.Helper()
	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingConfirmed)
	require.NoError(t, err)
	updated, err := f.svc.UpdateBookingStatus(context.Background(), created.ID, models.BookingCompleted)
	require.NoError(t, err)
	return updated
}

func TestCreateRating_RequiresCompletedBooking(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.svc.CreateRating(context.Background(), models.CreateRatingRequest{
		BookingID: created.ID,
		HotelID:   "hotel-1",
		ArtistID:  "artist-1",
		Stars:     5,
	})
	require.Error(t, err)
	assert.Equal(t, svcerr.KindValidation, svcerr.KindOf(err))
}

func TestCreateRating_RecomputesArtistAverage(t *testing.T) {
	f := newFixture()
	b := completedBooking(t, f)

	_, err := f.svc.CreateRating(context.Background(), models.CreateRatingRequest{
		BookingID: b.ID,
		HotelID:   b.HotelID,
		ArtistID:  b.ArtistID,
		Stars:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, f.artist.ratings[b.ArtistID])

	_, err = f.svc.CreateRating(context.Background(), models.CreateRatingRequest{
		BookingID: b.ID,
		HotelID:   b.HotelID,
		ArtistID:  b.ArtistID,
		Stars:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, f.artist.ratings[b.ArtistID])
}

func TestCreateRating_StarsOutOfRange(t *testing.T) {
	f := newFixture()
	b := completedBooking(t, f)

	for _, stars := range []int{0, 6, -1} {
		_, err := f.svc.CreateRating(context.Background(), models.CreateRatingRequest{
			BookingID: b.ID,
			HotelID:   b.HotelID,
			ArtistID:  b.ArtistID,
			Stars:     stars,
		})
		require.Error(t, err)
		assert.Equal(t, svcerr.KindValidation, svcerr.KindOf(err))
	}
}

func TestListRatingsForArtist_VisibilityFilter(t *testing.T) {
	f := newFixture()
	b := completedBooking(t, f)

	hidden := false
	for _, visible := range []*bool{nil, &hidden} {
		_, err := f.svc.CreateRating(context.Background(), models.CreateRatingRequest{
			BookingID:         b.ID,
			HotelID:           b.HotelID,
			ArtistID:          b.ArtistID,
			Stars:             3,
			IsVisibleToArtist: visible,
		})
		require.NoError(t, err)
	}

	all, err := f.svc.ListRatingsForArtist(context.Background(), b.ArtistID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visibleOnly, err := f.svc.ListRatingsForArtist(context.Background(), b.ArtistID, true)
	require.NoError(t, err)
	assert.Len(t, visibleOnly, 1)
	assert.True(t, visibleOnly[0].IsVisibleToArtist)
}
