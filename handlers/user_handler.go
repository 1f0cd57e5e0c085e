package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/helper"
	"blog-cms/middleware"
	"blog-cms/models"
	"blog-cms/services"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req.User) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.User)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.sendUser(c, http.StatusCreated, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req.User) {
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.User)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.sendUser(c, http.StatusOK, user)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for i := range users {
		response, err := h.userService.BuildUserResponse(&users[i])
		if err != nil {
			h.Helper.SendError(c, err)
			return
		}
		responses = append(responses, response)
	}

	c.JSON(http.StatusOK, responses)
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	h.sendUser(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var envelope struct {
		UserUpdateData json.RawMessage `json:"userUpdateData"`
	}
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	var req models.UpdateUserRequest
	fields, err := helper.DecodePartial(envelope.UserUpdateData, &req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	req.Fields = fields
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), user.ID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.sendUser(c, http.StatusOK, updated)
}

func (h *UserHandler) sendUser(c *gin.Context, status int, user *models.User) {
	response, err := h.userService.BuildUserResponse(user)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(status, response)
}
