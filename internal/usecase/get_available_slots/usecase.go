package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	providerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/provider"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	providerRepo     ProviderRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	busyBlockRepo    BusyBlockRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	observer         SlotsObserver
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providerRepo ProviderRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	busyBlockRepo BusyBlockRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:     providerRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		busyBlockRepo:    busyBlockRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithSlotsObserver подключает сбор метрик по количеству слотов
func (uc *UseCase) WithSlotsObserver(observer SlotsObserver) *UseCase {
	uc.observer = observer
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: provider=%s, service=%s, date=%04d-%02d-%02d",
		req.Provider, parsed.serviceID, parsed.year, parsed.month, parsed.day)

	// 2. Получаем текущее время (один раз на запрос)
	now := uc.timeProvider.Now()

	// 3. Загружаем контекст в одной read-only транзакции
	var sc *slotContext
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		loaded, err := uc.loadContext(txCtx, parsed)
		if err != nil {
			return err
		}
		sc = loaded
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: failed to load context: %v", err)
		return nil, fmt.Errorf("%w: failed to load context: %v", ErrInternal, err)
	}

	// 4. Чистый расчёт слотов
	slots := ComputeSlots(ComputeInput{
		Year:            parsed.year,
		Month:           parsed.month,
		Day:             parsed.day,
		Location:        sc.location,
		Rules:           sc.rules,
		DurationMinutes: sc.service.DurationMinutes,
		Settings:        sc.settings,
		Commitments:     sc.commitments,
		Now:             now,
	})

	if uc.observer != nil {
		uc.observer.ObserveSlots(len(slots))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for provider=%s, service=%s, rules=%d, commitments=%d",
		len(slots), sc.provider.ID, sc.service.ID, len(sc.rules), len(sc.commitments))

	return &Response{
		ProviderID:      sc.provider.ID,
		ServiceID:       sc.service.ID,
		Date:            time.Date(parsed.year, parsed.month, parsed.day, 0, 0, 0, 0, sc.location),
		Timezone:        sc.location.String(),
		DurationMinutes: sc.service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// loadContext загружает провайдера, услугу, настройки, правила на день недели
// и занятость провайдера на запрошенную дату
func (uc *UseCase) loadContext(ctx context.Context, req *parsedRequest) (*slotContext, error) {
	// 3.1. Провайдер
	provider, err := uc.resolveProvider(ctx, req)
	if err != nil {
		return nil, err
	}

	loc, err := loadLocation(provider)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: provider id=%s: %v", provider.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 3.2. Услуга в рамках провайдера
	service, err := uc.serviceRepo.GetByIDAndProvider(ctx, req.serviceID, provider.ID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found for provider id=%s", req.serviceID, provider.ID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.BelongsTo(provider.ID) {
		uc.logger.Warn("GetAvailableSlots: service id=%s belongs to provider id=%s, requested provider id=%s",
			service.ID, service.ProviderID, provider.ID)
		return nil, ErrServiceNotFound
	}
	if err := validateService(service); err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 3.3. Настройки (отсутствие настроек - не ошибка)
	settings, err := uc.availabilityRepo.GetSettings(ctx, provider.ID)
	if err != nil {
		if !errors.Is(err, availabilityRepo.ErrSettingsNotFound) {
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultAvailabilitySettings(provider.ID)
		uc.logger.Info("GetAvailableSlots: using default settings for provider=%s", provider.ID)
	}

	// 3.4. Правила на день недели в часовом поясе провайдера
	weekday := weekdayIn(req.year, req.month, req.day, loc)
	rules, err := uc.availabilityRepo.GetRulesByDay(ctx, provider.ID, int(weekday))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	sc := &slotContext{
		provider: provider,
		service:  service,
		settings: settings,
		rules:    rules,
		location: loc,
	}

	// Провайдер не работает в этот день - занятость не нужна
	if len(rules) == 0 {
		uc.logger.Info("GetAvailableSlots: provider=%s has no rules on %s", provider.ID, weekday)
		return sc, nil
	}

	// 3.5. Занятость: сутки провайдера, расширенные на буферы, чтобы учесть
	// бронирования за пределами дня, буфер которых заходит внутрь
	day := dayBounds(req.year, req.month, req.day, loc)
	filter := domain.CommitmentsFilter{
		ProviderID:       provider.ID,
		From:             day.Start.Add(-settings.BufferAfter()),
		To:               day.End.Add(settings.BufferBefore()),
		ExcludeBookingID: req.excludeBookingID,
	}

	bookings, err := uc.bookingRepo.GetActiveOverlapping(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.busyBlockRepo.GetOverlapping(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get busy blocks: %v", ErrInternal, err)
	}

	sc.commitments = toIntervals(excludeBooking(bookings, req), blocks)
	return sc, nil
}

// resolveProvider ищет провайдера по ID или username
func (uc *UseCase) resolveProvider(ctx context.Context, req *parsedRequest) (*domain.Provider, error) {
	var (
		provider *domain.Provider
		err      error
	)
	if req.providerID != nil {
		provider, err = uc.providerRepo.GetByID(ctx, *req.providerID)
	} else {
		provider, err = uc.providerRepo.GetByUsername(ctx, req.username)
	}

	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%v username=%q not found", req.providerID, req.username)
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	return provider, nil
}

// excludeBooking убирает переносимое бронирование, если хранилище его всё же вернуло
func excludeBooking(bookings []*domain.Booking, req *parsedRequest) []*domain.Booking {
	if req.excludeBookingID == nil {
		return bookings
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && b.ID == *req.excludeBookingID {
			continue
		}
		result = append(result, b)
	}
	return result
}

// isDomainError ошибки, которые возвращаются вызывающему без дополнительной обёртки
func isDomainError(err error) bool {
	return errors.Is(err, ErrProviderNotFound) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInternal)
}
