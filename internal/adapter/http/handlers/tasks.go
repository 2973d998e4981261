package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mychecklist/internal/adapter/http/dto"
	"mychecklist/internal/adapter/http/mapper"
	"mychecklist/internal/adapter/http/middleware"
	"mychecklist/internal/adapter/http/validation"
	"mychecklist/internal/core/domain"
	"mychecklist/internal/core/ports"
	"mychecklist/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, ok := requireUserID(c, lang)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	taskID, err := h.taskService.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTaskInput) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTaskResponse{ID: taskID})
}

func (h *TaskHandler) GetToday(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, ok := requireUserID(c, lang)
	if !ok {
		return
	}

	date, ok := queryDate(c, lang)
	if !ok {
		return
	}

	schedule, err := h.taskService.GetSchedule(c.Request.Context(), userID, date)
	if err != nil {
		zap.L().Error("failed to get schedule", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleResponse(schedule))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, ok := requireUserID(c, lang)
	if !ok {
		return
	}

	taskID, ok := paramTaskID(c, lang)
	if !ok {
		return
	}

	date, ok := queryDate(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.CompleteTask(c.Request.Context(), userID, taskID, date); err != nil {
		h.writeTaskMutationError(c, lang, userID, taskID, apierrors.MsgFailCompleteTask, "failed to complete task", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CancelCompletion(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, ok := requireUserID(c, lang)
	if !ok {
		return
	}

	taskID, ok := paramTaskID(c, lang)
	if !ok {
		return
	}

	date, ok := queryDate(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.CancelCompletion(c.Request.Context(), userID, taskID, date); err != nil {
		h.writeTaskMutationError(c, lang, userID, taskID, apierrors.MsgFailCancelCompletion, "failed to cancel completion", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, ok := requireUserID(c, lang)
	if !ok {
		return
	}

	taskID, ok := paramTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		h.writeTaskMutationError(c, lang, userID, taskID, apierrors.MsgFailDeleteTask, "failed to delete task", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) writeTaskMutationError(c *gin.Context, lang string, userID, taskID uint64, failMsgKey, logMsg string, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskAccessDenied):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgTaskAccessDenied, lang),
		)
	default:
		zap.L().Error(logMsg, zap.Uint64("user_id", userID), zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsgKey, lang),
		)
	}
}

func requireUserID(c *gin.Context, lang string) (uint64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgLoginRequired, lang),
		)
		return 0, false
	}
	return userID, true
}

func paramTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}

// queryDate reads the optional "date" query parameter, defaulting to the
// current date.
func queryDate(c *gin.Context, lang string) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDate, lang),
		)
		return time.Time{}, false
	}
	return date, true
}
