package handlers

import (
	"arka/services"
	"arka/validator"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verrs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinel errors onto HTTP statuses; anything
// unrecognized is a 500.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrCannotRemoveOwner):
		return forbidden(c, err.Error())
	case errors.Is(err, services.ErrFamilyNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrSpaceNotFound),
		errors.Is(err, services.ErrNoSpaceAccess),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrFolderNotFound),
		errors.Is(err, services.ErrFileNotFound),
		errors.Is(err, services.ErrPermissionNotFound),
		errors.Is(err, services.ErrDelegationNotFound),
		errors.Is(err, services.ErrAlertNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrEmailAlreadyInUse),
		errors.Is(err, services.ErrSpaceAlreadyExists),
		errors.Is(err, services.ErrCategoryAlreadyExists),
		errors.Is(err, services.ErrFolderAlreadyExists),
		errors.Is(err, services.ErrFileAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, services.ErrFolderCycle),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrExpiryInPast),
		errors.Is(err, services.ErrTriggerInPast),
		errors.Is(err, services.ErrSelfGrant):
		return badRequest(c, err.Error())
	}
	return serverErrorWithDetails(c, fallback, err)
}
