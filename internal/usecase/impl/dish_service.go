package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "foodiecircle/internal/delivery/context"
	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dishService struct {
	dishRepo  repository.DishRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// DishServiceParams holds dependencies for DishService, injected by Fx.
type DishServiceParams struct {
	fx.In

	DishRepo  repository.DishRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDishService creates a new dish service instance
func NewDishService(params DishServiceParams) usecase.DishUsecase {
	return &dishService{
		dishRepo:  params.DishRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// LogDish validates and stores the dish, then publishes a DishLogged event.
// A publish failure is logged and does not fail the request.
func (s *dishService) LogDish(ctx context.Context, input *usecase.DishInput) (*entity.Dish, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	dish, err := s.buildDish(userID, input)
	if err != nil {
		return nil, err
	}

	if err := s.dishRepo.CreateDish(ctx, dish); err != nil {
		return nil, errors.Wrap(err, "failed to create dish")
	}

	s.publish(ctx, dish)

	return dish, nil
}

func (s *dishService) buildDish(userID uuid.UUID, input *usecase.DishInput) (*entity.Dish, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dish name is required")
	}
	if !entity.ValidRating(input.AtmosphereRating) || !entity.ValidRating(input.DishRating) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("ratings must be between 1 and 5")
	}

	dish := &entity.Dish{
		ID:               uuid.New(),
		OwnerID:          userID,
		Name:             strings.TrimSpace(input.Name),
		RestaurantName:   trimmedOrNil(input.RestaurantName),
		Place:            trimmedOrNil(input.Place),
		AtmosphereRating: input.AtmosphereRating,
		DishRating:       input.DishRating,
		Notes:            input.Notes,
		ImageURL:         input.ImageURL,
		CreatedAt:        s.now(),
	}

	if raw := strings.TrimSpace(input.Occasion); raw != "" {
		occasion, err := entity.ParseOccasion(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidOccasion.WithDetails(raw)
		}
		dish.Occasion = &occasion
	}

	return dish, nil
}

func (s *dishService) publish(ctx context.Context, dish *entity.Dish) {
	event := &service.DishLoggedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		DishID:    dish.ID.String(),
		AuthorID:  dish.OwnerID.String(),
		DishName:  dish.Name,
		LoggedAt:  dish.CreatedAt.UTC().Format(time.RFC3339),
	}
	if dish.RestaurantName != nil {
		event.RestaurantName = *dish.RestaurantName
	}
	if dish.Place != nil {
		event.Place = *dish.Place
	}

	if err := s.publisher.PublishDishLogged(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish dish event",
			slog.String("dish_id", event.DishID),
			slog.Any("error", err),
		)
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
