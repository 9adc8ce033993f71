package users

import (
	"errors"
	"net/http"
	"strconv"

	"adboard/internal/api"
	"adboard/internal/database"
	"adboard/internal/model"
	"adboard/internal/service"
	"adboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	getUserByID  = store.GetUserByID
	listUsers    = store.ListUsers
)

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// @Summary     Create a new user
// @Description 接收 JSON 建立新帳號，密碼以 bcrypt 雜湊後儲存，email 原樣保存
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "使用者資料"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "格式錯誤或 username/email 已存在"
// @Failure     503 {object} api.ErrorResponse
// @Router      /user [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already in use"})
			}
			log.Error().Err(err).Msg("create user failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}

		return c.JSON(http.StatusOK, userResponse(user))
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者資料（不含密碼哈希）
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     503 {object} api.ErrorResponse
// @Router      /user/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			log.Error().Err(err).Msg("get user failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}
		return c.JSON(http.StatusOK, userResponse(user))
	}
}

// @Summary     List all users
// @Description 回傳所有使用者，欄位順序為 id, username, email
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			log.Error().Err(err).Msg("list users failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, userResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
