package adminController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	adminValidator "lms/validators/admin"
)

func (ct *Controller) ListPlaylists(c *fiber.Ctx) error {
	playlists, err := ct.Admin.ListAllPlaylists()
	if err != nil {
		return middleware.ServiceError(c, err, "Playlist not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlists fetched successfully!", playlists)
}

func (ct *Controller) GetPlaylist(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist id!", nil)
	}

	playlist, err := ct.Admin.GetPlaylist(id)
	if err != nil {
		return middleware.ServiceError(c, err, "Playlist not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlist fetched successfully!", playlist)
}

func (ct *Controller) CreatePlaylist(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlaylist").(*adminValidator.PlaylistRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	playlist, err := ct.Admin.CreatePlaylist(playlistInput(reqData))
	if err != nil {
		return middleware.ServiceError(c, err, "Playlist not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Playlist created successfully!", playlist)
}

func (ct *Controller) UpdatePlaylist(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist id!", nil)
	}
	reqData, ok := c.Locals("validatedPlaylist").(*adminValidator.PlaylistRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	playlist, err := ct.Admin.UpdatePlaylist(id, playlistInput(reqData))
	if err != nil {
		return middleware.ServiceError(c, err, "Playlist not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlist updated successfully!", playlist)
}

func (ct *Controller) DeletePlaylist(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist id!", nil)
	}

	if err := ct.Admin.DeletePlaylist(id); err != nil {
		return middleware.ServiceError(c, err, "Playlist not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playlist deleted successfully!", nil)
}

func playlistInput(reqData *adminValidator.PlaylistRequest) services.PlaylistInput {
	return services.PlaylistInput{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Thumbnail:     reqData.Thumbnail,
		IsPublished:   reqData.IsPublished,
		VideoIDs:      reqData.VideoIDs,
		DepartmentIDs: reqData.DepartmentIDs,
	}
}
