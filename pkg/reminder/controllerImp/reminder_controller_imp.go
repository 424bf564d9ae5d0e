package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"studyplan/pkg/reminder"
)

type ReminderCtrl struct{ svc *reminder.Service }

func New(svc *reminder.Service) *ReminderCtrl { return &ReminderCtrl{svc: svc} }

func (h *ReminderCtrl) Today(c echo.Context) error {
	summary, count := h.svc.DailySummary(time.Now())
	latest, err := h.svc.Latest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"summary":       summary,
		"task_count":    count,
		"last_recorded": latest,
	})
}
