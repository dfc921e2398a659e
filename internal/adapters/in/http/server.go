package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Reads degrade gracefully per-entity; the write path fails closed.
type Server struct {
	// Command handlers
	completeStepHandler commands.ApplyWorkflowTransitionCommandHandler

	// Query handlers
	stepsForRoleHandler     queries.StepsForRoleQueryHandler
	progressForUserHandler  queries.ProgressForUserQueryHandler
	progressForOrderHandler queries.ProgressForOrderQueryHandler
	timelineForOrderHandler queries.TimelineForOrderQueryHandler
	incompleteUsersHandler  queries.IncompleteUsersQueryHandler
	roleStatsHandler        queries.RoleStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	completeStepHandler commands.ApplyWorkflowTransitionCommandHandler,
	stepsForRoleHandler queries.StepsForRoleQueryHandler,
	progressForUserHandler queries.ProgressForUserQueryHandler,
	progressForOrderHandler queries.ProgressForOrderQueryHandler,
	timelineForOrderHandler queries.TimelineForOrderQueryHandler,
	incompleteUsersHandler queries.IncompleteUsersQueryHandler,
	roleStatsHandler queries.RoleStatsQueryHandler,
) *Server {
	return &Server{
		completeStepHandler:     completeStepHandler,
		stepsForRoleHandler:     stepsForRoleHandler,
		progressForUserHandler:  progressForUserHandler,
		progressForOrderHandler: progressForOrderHandler,
		timelineForOrderHandler: timelineForOrderHandler,
		incompleteUsersHandler:  incompleteUsersHandler,
		roleStatsHandler:        roleStatsHandler,
	}
}

// GetRoleSteps handles GET /api/v1/roles/:role/steps.
func (s *Server) GetRoleSteps(ctx echo.Context, role string) error {
	steps, err := s.stepsForRoleHandler.Handle(ctx.Request().Context(), queries.NewStepsForRoleQuery(role))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Step, len(steps))
	for i, step := range steps {
		response[i] = servers.Step{
			Code:        step.Code,
			Name:        step.Name,
			Description: step.Description,
			Role:        step.Role,
			SortOrder:   step.SortOrder,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserProgress handles GET /api/v1/users/:userId/progress.
// An orderId query parameter narrows the checklist to a single order.
func (s *Server) GetUserProgress(ctx echo.Context, userId openapi_types.UUID, params servers.GetUserProgressParams) error {
	userID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var view queries.ProgressView
	if params.OrderId != nil {
		orderID, idErr := kernel.UUIDFromBytes((*params.OrderId)[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		query, queryErr := queries.NewProgressForOrderQuery(orderID, userID)
		if queryErr != nil {
			return errorResponse(ctx, queryErr)
		}
		view, err = s.progressForOrderHandler.Handle(ctx.Request().Context(), query)
	} else {
		query, queryErr := queries.NewProgressForUserQuery(userID)
		if queryErr != nil {
			return errorResponse(ctx, queryErr)
		}
		view, err = s.progressForUserHandler.Handle(ctx.Request().Context(), query)
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserProgress(view))
}

// GetOrderProgress handles GET /api/v1/orders/:orderId/progress.
func (s *Server) GetOrderProgress(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderProgressParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	userID, err := kernel.UUIDFromBytes(params.UserId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewProgressForOrderQuery(orderID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.progressForOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserProgress(view))
}

// GetOrderTimeline handles GET /api/v1/orders/:orderId/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewTimelineForOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	entries, err := s.timelineForOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.TimelineEntry, len(entries))
	for i, entry := range entries {
		description := entry.Description
		response[i] = servers.TimelineEntry{
			StepCode:    entry.StepCode,
			StepName:    entry.StepName,
			Description: &description,
			SortOrder:   entry.SortOrder,
			InCatalog:   entry.InCatalog,
			Completed:   entry.Completed,
			CompletedAt: entry.CompletedAt,
			Details:     entry.Details,
			Actor: servers.Actor{
				Id:          entry.Actor.ID.Bytes(),
				DisplayName: entry.Actor.DisplayName,
				Role:        entry.Actor.Role,
				Phone:       entry.Actor.Phone,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteStep handles POST /api/v1/progress - records a completion and
// applies any status transition coupled to the step.
func (s *Server) CompleteStep(ctx echo.Context) error {
	var request servers.CompleteStepRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	userID, err := kernel.UUIDFromBytes(request.UserId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := kernel.UUIDFromBytes(request.OrderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var details string
	if request.Details != nil {
		details = *request.Details
	}

	cmd, err := commands.NewApplyWorkflowTransitionCommand(orderID, request.StepCode, userID, details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeStepHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRoleIncompleteUsers handles GET /api/v1/roles/:role/incomplete-users.
func (s *Server) GetRoleIncompleteUsers(ctx echo.Context, role string) error {
	users, err := s.incompleteUsersHandler.Handle(ctx.Request().Context(), queries.NewIncompleteUsersQuery(role))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.IncompleteUser, len(users))
	for i, u := range users {
		response[i] = servers.IncompleteUser{
			UserId:     u.UserID.Bytes(),
			Percentage: u.Percentage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRoleStats handles GET /api/v1/roles/:role/stats.
func (s *Server) GetRoleStats(ctx echo.Context, role string) error {
	stats, err := s.roleStatsHandler.Handle(ctx.Request().Context(), queries.NewRoleStatsQuery(role))
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RoleStats{
		Role:            stats.Role,
		TotalUsers:      stats.TotalUsers,
		CompletedUsers:  stats.CompletedUsers,
		AverageProgress: stats.AverageProgress,
		CompletionRate:  stats.CompletionRate,
	})
}

func toUserProgress(view queries.ProgressView) servers.UserProgress {
	steps := make([]servers.StepProgress, len(view.Steps))
	for i, step := range view.Steps {
		steps[i] = servers.StepProgress{
			Code:             step.Code,
			Name:             step.Name,
			Description:      step.Description,
			Completed:        step.Completed,
			StatusLabel:      step.StatusLabel,
			CompletionDetail: step.CompletionDetail,
		}
	}

	return servers.UserProgress{
		UserId:         view.UserID.Bytes(),
		Role:           view.Role,
		TotalSteps:     view.TotalSteps,
		CompletedSteps: view.CompletedSteps,
		Percentage:     view.Percentage,
		Steps:          steps,
	}
}

// errorResponse maps domain error categories onto HTTP statuses: missing
// preconditions are 404, malformed input is 400, a rejected lifecycle
// transition is 422, everything else is 500.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
