package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"studyplan/pkg/planner/repository"
	"studyplan/pkg/planner/service"
	"studyplan/pkg/planner/serviceImp"
	"studyplan/pkg/planner/types"
)

type PlannerCtrl struct{ svc service.PlannerService }

func New(svc service.PlannerService) *PlannerCtrl { return &PlannerCtrl{svc: svc} }

const localOnlyNotice = "Saved locally. Will sync when online."

func (h *PlannerCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var form types.AssignmentForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	p, localOnly, err := h.svc.Generate(uid, form)
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrMissingFields),
			errors.Is(err, serviceImp.ErrBadDueDate),
			errors.Is(err, serviceImp.ErrPastDueDate):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
	}

	resp := map[string]any{"planner": p, "local_only": localOnly}
	if localOnly {
		resp["notice"] = localOnlyNotice
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *PlannerCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	planners, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, planners)
}

func (h *PlannerCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.svc.Get(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlannerCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	existing, err := h.svc.Get(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	// bind over the current record so omitted fields keep their values
	p := *existing
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p.ID = c.Param("id")

	saved, localOnly, err := h.svc.Update(uid, p)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{"planner": saved, "local_only": localOnly}
	if localOnly {
		resp["notice"] = localOnlyNotice
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PlannerCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	localOnly, err := h.svc.Delete(uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{"status": "ok", "local_only": localOnly}
	if localOnly {
		resp["notice"] = "Deleted locally. Will sync when online."
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PlannerCtrl) ToggleTask(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Completed *bool `json:"completed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	completed := true
	if body.Completed != nil {
		completed = *body.Completed
	}

	p, localOnly, err := h.svc.ToggleTask(uid, c.Param("id"), c.Param("task_id"), completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{"planner": p, "local_only": localOnly}
	if localOnly {
		resp["notice"] = localOnlyNotice
	}
	return c.JSON(http.StatusOK, resp)
}
