package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
)

// TaskController meneruskan pelacakan tugas ke backend HR.
type TaskController struct {
	API hrapi.Doer
}

func NewTaskController(api hrapi.Doer) *TaskController {
	return &TaskController{API: api}
}

func (tc *TaskController) List(c *fiber.Ctx) error {
	return hrapi.Proxy(c, tc.API, "POST", "/api/tasks")
}

func (tc *TaskController) Store(c *fiber.Ctx) error {
	return hrapi.Proxy(c, tc.API, "POST", "/api/tasks/store")
}

func (tc *TaskController) Update(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}
	return hrapi.Proxy(c, tc.API, "PUT", "/api/tasks/"+c.Params("id"))
}

func (tc *TaskController) Delete(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}
	return hrapi.Proxy(c, tc.API, "DELETE", "/api/tasks/"+c.Params("id"))
}
