package client

import (
	"context"
	"fmt"
	"net/http"

	"trainease/internal/api"
	"trainease/internal/model"
)

func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.UserResponse, error) {
	var u api.UserResponse
	if err := c.Do(ctx, http.MethodPost, "/api/register", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*api.UserResponse, error) {
	var u api.UserResponse
	err := c.Do(ctx, http.MethodPost, "/api/login", api.LoginRequest{Username: username, Password: password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context) (*api.UserResponse, error) {
	var u api.UserResponse
	if err := c.Do(ctx, http.MethodGet, "/api/user", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListTrains(ctx context.Context) ([]model.Train, error) {
	var out []model.Train
	if err := c.Do(ctx, http.MethodGet, "/api/trains", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTrain(ctx context.Context, id int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/trains/%d", id), nil, nil)
}

func (c *Client) ListRoutes(ctx context.Context) ([]model.Route, error) {
	var out []model.Route
	if err := c.Do(ctx, http.MethodGet, "/api/routes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.Do(ctx, http.MethodGet, "/api/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*model.Booking, error) {
	var b model.Booking
	if err := c.Do(ctx, http.MethodPost, "/api/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int) (*api.CancelBookingResponse, error) {
	var out api.CancelBookingResponse
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%d/cancel", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]api.UserResponse, error) {
	var out []api.UserResponse
	if err := c.Do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetUserRole(ctx context.Context, id int, isAdmin bool) (*api.UserResponse, error) {
	var u api.UserResponse
	err := c.Do(ctx, http.MethodPatch, fmt.Sprintf("/api/users/%d", id), api.UpdateUserRoleRequest{IsAdmin: &isAdmin}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
