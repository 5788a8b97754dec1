package api

import (
	"context"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Payments wraps /api/payments.
type Payments struct{ r Requester }

func (p *Payments) List(ctx context.Context) ([]models.Payment, error) {
	return list[models.Payment](ctx, p.r, "/api/payments")
}

func (p *Payments) Get(ctx context.Context, id int64) (*models.Payment, error) {
	var out models.Payment
	if err := get(ctx, p.r, idPath("/api/payments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Payments) Create(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := post(ctx, p.r, "/api/payments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Payments) Update(ctx context.Context, id int64, req models.PaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := put(ctx, p.r, idPath("/api/payments/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Payments) Delete(ctx context.Context, id int64) error {
	return del(ctx, p.r, idPath("/api/payments/%d", id))
}

func (p *Payments) ForLease(ctx context.Context, leaseID int64) ([]models.Payment, error) {
	return list[models.Payment](ctx, p.r, idPath("/api/payments/lease/%d", leaseID))
}

func (p *Payments) Summary(ctx context.Context, leaseID int64) (*models.PaymentSummary, error) {
	var out models.PaymentSummary
	if err := get(ctx, p.r, idPath("/api/payments/lease/%d/summary", leaseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pay records a tenant payment for a lease.
func (p *Payments) Pay(ctx context.Context, leaseID int64, req models.PaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := post(ctx, p.r, idPath("/api/payments/lease/%d/pay", leaseID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RentSchedules wraps /api/leases/{id}/rent-schedule.
type RentSchedules struct{ r Requester }

// ForLease returns a lease's schedule ordered by due date.
func (s *RentSchedules) ForLease(ctx context.Context, leaseID int64) ([]models.RentScheduleItem, error) {
	return list[models.RentScheduleItem](ctx, s.r, idPath("/api/leases/%d/rent-schedule", leaseID))
}

func (s *RentSchedules) Current(ctx context.Context, leaseID int64) (*models.RentScheduleItem, error) {
	var out models.RentScheduleItem
	if err := get(ctx, s.r, idPath("/api/leases/%d/rent-schedule/current", leaseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RentSchedules) Upcoming(ctx context.Context) ([]models.RentScheduleItem, error) {
	return list[models.RentScheduleItem](ctx, s.r, "/api/leases/rent-schedule/upcoming")
}

func (s *RentSchedules) Pay(ctx context.Context, leaseID, scheduleID int64, req models.PayScheduleRequest) (*models.RentScheduleItem, error) {
	var out models.RentScheduleItem
	if err := post(ctx, s.r, idPath("/api/leases/%d/rent-schedule/%d/pay", leaseID, scheduleID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RentSchedules) Waive(ctx context.Context, leaseID, scheduleID int64, req models.WaiveScheduleRequest) (*models.RentScheduleItem, error) {
	var out models.RentScheduleItem
	if err := post(ctx, s.r, idPath("/api/leases/%d/rent-schedule/%d/waive", leaseID, scheduleID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
