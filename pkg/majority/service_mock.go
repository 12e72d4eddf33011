package majority

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_Service struct {
	mock.Mock
}

func (m *Mock_Service) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Service) MajorityElement(ctx context.Context, request *MajorityRequest) (*MajorityResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *MajorityResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *MajorityRequest) *MajorityResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*MajorityResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *MajorityRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) MajorityVote(ctx context.Context, request *MajorityRequest) (*MajorityResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *MajorityResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *MajorityRequest) *MajorityResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*MajorityResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *MajorityRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) SequenceLen(ctx context.Context, request *LenRequest) (*LenResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *LenResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *LenRequest) *LenResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*LenResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *LenRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) IsMajorityElement(ctx context.Context, request *IsMajorityRequest) (*IsMajorityResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *IsMajorityResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *IsMajorityRequest) *IsMajorityResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*IsMajorityResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *IsMajorityRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
