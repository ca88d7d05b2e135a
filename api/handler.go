// HTTP handlers exposing the scheduling engine. Each request builds a
// fresh engine, so concurrent requests never share simulation state.

package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/cpusched/cpusched/config"
	"github.com/cpusched/cpusched/sim"
	"github.com/cpusched/cpusched/sim/workload"
)

// SchedulerHandler serves one endpoint per scheduling policy.
type SchedulerHandler struct {
	config *config.ServerConfig
}

// NewSchedulerHandler creates a handler bound to the server config.
func NewSchedulerHandler(config *config.ServerConfig) *SchedulerHandler {
	return &SchedulerHandler{config: config}
}

// Register mounts the policy endpoints under /api/v1.
func (h *SchedulerHandler) Register(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fifo", h.FIFO)
	v1.Post("/sjf", h.SJF)
	v1.Post("/rr", h.RoundRobin)
	v1.Post("/priority", h.Priority)
}

// FIFO runs non-preemptive arrival-order scheduling.
func (h *SchedulerHandler) FIFO(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(req *ScheduleRequest) (sim.Policy, int64) {
		return sim.PolicyFIFO, 0
	})
}

// SJF runs Shortest Job First; "preemptive": true selects shortest
// remaining time first.
func (h *SchedulerHandler) SJF(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(req *ScheduleRequest) (sim.Policy, int64) {
		if req.Preemptive {
			return sim.PolicySJF, 0
		}
		return sim.PolicySJFNonPreemptive, 0
	})
}

// RoundRobin runs Round Robin with the request's quantum, falling back to
// the configured default when the body omits it.
func (h *SchedulerHandler) RoundRobin(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(req *ScheduleRequest) (sim.Policy, int64) {
		quantum := req.Quantum
		if quantum == 0 {
			quantum = h.config.DefaultQuantum
		}
		return sim.PolicyRoundRobin, quantum
	})
}

// Priority runs fixed-priority scheduling; "preemptive": true allows a
// higher-priority arrival to interrupt the running process.
func (h *SchedulerHandler) Priority(ctx *fiber.Ctx) error {
	return h.schedule(ctx, func(req *ScheduleRequest) (sim.Policy, int64) {
		if req.Preemptive {
			return sim.PolicyPriority, 0
		}
		return sim.PolicyPriorityNonPreemptive, 0
	})
}

func (h *SchedulerHandler) schedule(ctx *fiber.Ctx, pick func(*ScheduleRequest) (sim.Policy, int64)) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	eng, err := workload.Build(req.Processes)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	policy, quantum := pick(&req)
	if err := eng.Run(policy, quantum); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, sim.ErrInvalidQuantum) {
			status = fiber.StatusBadRequest
		}
		return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	resp := BuildResponse(eng, policy, quantum)
	logrus.Infof("run %s: policy=%s processes=%d switches=%d", resp.RunID, policy, len(eng.Processes), eng.ContextSwitches)
	return ctx.JSON(resp)
}
