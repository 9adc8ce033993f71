package adverts

import (
	"errors"
	"net/http"
	"strconv"

	"adboard/internal/api"
	"adboard/internal/database"
	"adboard/internal/model"
	"adboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	createAdvert  = store.CreateAdvert
	getAdvertByID = store.GetAdvertByID
	deleteAdvert  = store.DeleteAdvert
	listAdverts   = store.ListAdverts
)

func advertResponse(a *model.Advert) api.AdvertResponse {
	return api.AdvertResponse{
		ID:        a.ID,
		Title:     a.Title,
		Text:      a.Text,
		Owner:     a.Owner,
		Timestamp: a.CreatedAt,
	}
}

// @Summary     Create a new advert
// @Description 接收 JSON 建立廣告，建立時間由服務端自動設定 (UTC, RFC3339)
// @Tags        adverts
// @Accept      json
// @Produce     json
// @Param       advert body api.CreateAdvertRequest true "廣告資料"
// @Success     200 {object} api.AdvertResponse
// @Failure     400 {object} api.ErrorResponse "格式錯誤或 user_id 不存在"
// @Failure     503 {object} api.ErrorResponse
// @Router      /advert [post]
func CreateAdvertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAdvertRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		advert, err := createAdvert(c.Request().Context(), db, &model.Advert{
			Title: req.Title,
			Text:  req.Text,
			Owner: req.UserID,
		})
		if err != nil {
			if errors.Is(err, store.ErrInvalidReference) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unknown user_id"})
			}
			log.Error().Err(err).Msg("create advert failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}

		return c.JSON(http.StatusOK, advertResponse(advert))
	}
}

// @Summary     Get an advert by ID
// @Description 透過 ID 查詢並回傳廣告資料
// @Tags        adverts
// @Produce     json
// @Param       id path int true "廣告 ID"
// @Success     200 {object} api.AdvertResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "廣告不存在"
// @Failure     503 {object} api.ErrorResponse
// @Router      /advert/{id} [get]
func GetAdvertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid advert ID"})
		}
		advert, err := getAdvertByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "advert not found"})
			}
			log.Error().Err(err).Msg("get advert failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}
		return c.JSON(http.StatusOK, advertResponse(advert))
	}
}

// @Summary     Delete an advert by ID
// @Description 透過 ID 刪除廣告並回傳被刪除的 ID
// @Tags        adverts
// @Produce     json
// @Param       id path int true "廣告 ID"
// @Success     200 {object} api.DeleteAdvertResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "廣告不存在"
// @Failure     503 {object} api.ErrorResponse
// @Router      /advert/{id} [delete]
func DeleteAdvertHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid advert ID"})
		}
		deleted, err := deleteAdvert(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "advert not found"})
			}
			log.Error().Err(err).Msg("delete advert failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}
		return c.JSON(http.StatusOK, api.DeleteAdvertResponse{DeletedID: deleted})
	}
}

// @Summary     List all adverts
// @Description 回傳所有廣告，欄位順序為 id, title, text, owner, timestamp
// @Tags        adverts
// @Produce     json
// @Success     200 {array} api.AdvertResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /adverts [get]
func ListAdvertsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		adverts, err := listAdverts(c.Request().Context(), db)
		if err != nil {
			log.Error().Err(err).Msg("list adverts failed")
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
		}
		resp := make([]api.AdvertResponse, 0, len(adverts))
		for i := range adverts {
			resp = append(resp, advertResponse(&adverts[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
