package controllers

import (
	"strconv"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/dto"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/response"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/validator"

	"github.com/gin-gonic/gin"
)

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	resp := dto.RoomResponse{
		ID:            room.ID,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		Amenities:     room.Amenities,
		Description:   room.Description,
		Images:        room.Images,
		IsAvailable:   room.IsAvailable,
	}
	if room.Hotel != nil {
		resp.Hotel = dto.BookingHotelResponse{
			ID:      room.Hotel.ID,
			Name:    room.Hotel.Name,
			Address: room.Hotel.Address,
			City:    room.Hotel.City,
		}
	}
	return resp
}

// RoomController xử lý các request về phòng
type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetAllRooms lấy danh sách phòng đang mở, lọc theo query params:
// destination, checkInDate, checkOutDate, guests, minPrice, maxPrice,
// roomType, sortBy (price_asc, price_desc, newest)
func (ctl *RoomController) GetAllRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Destination: c.Query("destination"),
		RoomType:    c.Query("roomType"),
		SortBy:      c.Query("sortBy"),
	}
	if v := c.Query("guests"); v != "" {
		filter.Guests, _ = strconv.Atoi(v)
	}
	if v := c.Query("minPrice"); v != "" {
		filter.MinPrice, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.Query("maxPrice"); v != "" {
		filter.MaxPrice, _ = strconv.ParseInt(v, 10, 64)
	}
	if inStr, outStr := c.Query("checkInDate"), c.Query("checkOutDate"); inStr != "" && outStr != "" {
		checkIn, err := validator.ParseDate(inStr)
		if err != nil {
			response.AppError(c, err)
			return
		}
		checkOut, err := validator.ParseDate(outStr)
		if err != nil {
			response.AppError(c, err)
			return
		}
		if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
			response.AppError(c, err)
			return
		}
		filter.CheckIn = &checkIn
		filter.CheckOut = &checkOut
	}

	rooms, err := ctl.rooms.ListRoomsFiltered(c.Request.Context(), filter)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, convertToRoomResponse(r))
	}
	response.Success(c, result)
}

// GetRoomDetail lấy chi tiết một phòng
func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	room, err := ctl.rooms.GetRoom(c.Request.Context(), uint(roomID))
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

// GetOwnerRooms lấy toàn bộ phòng của khách sạn owner, kể cả phòng đã tắt
func (ctl *RoomController) GetOwnerRooms(c *gin.Context) {
	ownerID := c.GetUint("userID")

	rooms, err := ctl.rooms.ListOwnerRooms(c.Request.Context(), ownerID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, convertToRoomResponse(r))
	}
	response.Success(c, result)
}

// CreateRoom tạo phòng mới cho khách sạn của owner
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	ownerID := c.GetUint("userID")

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctl.rooms.CreateRoom(c.Request.Context(), ownerID, req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, convertToRoomResponse(*room))
}

// UpdateRoom cập nhật thông tin phòng
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	ownerID := c.GetUint("userID")

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctl.rooms.UpdateRoom(c.Request.Context(), ownerID, req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

// ToggleRoomAvailability bật/tắt nhận đặt phòng mới
func (ctl *RoomController) ToggleRoomAvailability(c *gin.Context) {
	ownerID := c.GetUint("userID")

	var req dto.ToggleRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctl.rooms.ToggleAvailability(c.Request.Context(), ownerID, req.RoomID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, convertToRoomResponse(*room))
}

// DeleteRoom xóa phòng không còn booking đang hoạt động
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	ownerID := c.GetUint("userID")

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	if err := ctl.rooms.DeleteRoom(c.Request.Context(), ownerID, uint(roomID)); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetRoomBookedDates lấy các khoảng ngày đã đặt của phòng cho calendar
func (ctl *RoomController) GetRoomBookedDates(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	dates, err := ctl.rooms.GetBookedDates(c.Request.Context(), uint(roomID))
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dates)
}
