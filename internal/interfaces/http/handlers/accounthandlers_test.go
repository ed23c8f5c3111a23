package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deptDto "campusvoice/internal/application/department/dto"
	notifDto "campusvoice/internal/application/notification/dto"
	userDto "campusvoice/internal/application/user/dto"
	"campusvoice/internal/interfaces/http/handlers/testutil"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
)

type mockNotificationService struct {
	listFn     func(ctx context.Context, actor authorization.Actor, req notifDto.ListNotificationsRequest) (*notifDto.ListNotificationsResponse, error)
	markReadFn func(ctx context.Context, actor authorization.Actor, id string) (*notifDto.NotificationDTO, error)
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, actor authorization.Actor, req notifDto.ListNotificationsRequest) (*notifDto.ListNotificationsResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, req)
	}
	return &notifDto.ListNotificationsResponse{}, nil
}

func (m *mockNotificationService) MarkNotificationRead(ctx context.Context, actor authorization.Actor, id string) (*notifDto.NotificationDTO, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, actor, id)
	}
	return nil, nil
}

type mockUserService struct {
	createFn func(ctx context.Context, actor authorization.Actor, req userDto.CreateUserRequest) (*userDto.UserResponse, error)
	getFn    func(ctx context.Context, userID string) (*userDto.UserResponse, error)
	listFn   func(ctx context.Context, actor authorization.Actor, req userDto.ListUsersRequest) (*userDto.ListUsersResponse, error)
	adjustFn func(ctx context.Context, actor authorization.Actor, userID string, req userDto.AdjustCredibilityRequest) (*userDto.CredibilityResponse, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, actor authorization.Actor, req userDto.CreateUserRequest) (*userDto.UserResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, req)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (*userDto.UserResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserService) ListUsers(ctx context.Context, actor authorization.Actor, req userDto.ListUsersRequest) (*userDto.ListUsersResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, req)
	}
	return &userDto.ListUsersResponse{}, nil
}

func (m *mockUserService) AdjustCredibility(ctx context.Context, actor authorization.Actor, userID string, req userDto.AdjustCredibilityRequest) (*userDto.CredibilityResponse, error) {
	if m.adjustFn != nil {
		return m.adjustFn(ctx, actor, userID, req)
	}
	return nil, nil
}

type mockDepartmentService struct {
	createFn func(ctx context.Context, actor authorization.Actor, req deptDto.CreateDepartmentRequest) (*deptDto.DepartmentDTO, error)
	listFn   func(ctx context.Context) ([]*deptDto.DepartmentDTO, error)
}

func (m *mockDepartmentService) CreateDepartment(ctx context.Context, actor authorization.Actor, req deptDto.CreateDepartmentRequest) (*deptDto.DepartmentDTO, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, req)
	}
	return nil, nil
}

func (m *mockDepartmentService) ListDepartments(ctx context.Context) ([]*deptDto.DepartmentDTO, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	var gotActor authorization.Actor
	var gotReq notifDto.ListNotificationsRequest
	handler := NewNotificationHandler(&mockNotificationService{
		listFn: func(_ context.Context, actor authorization.Actor, req notifDto.ListNotificationsRequest) (*notifDto.ListNotificationsResponse, error) {
			gotActor, gotReq = actor, req
			return &notifDto.ListNotificationsResponse{
				Items:  []*notifDto.NotificationDTO{{ID: "ntf_1", Title: "Issue approved"}},
				Total:  1,
				Unread: 1,
			}, nil
		},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
	testutil.SetAuthContext(c, testutil.Student)
	testutil.SetQueryParams(c, map[string]string{"unread": "true"})
	handler.ListNotifications(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testutil.Student.ID, gotActor.ID)
	assert.True(t, gotReq.UnreadOnly)
	assert.Equal(t, 1, gotReq.Page)
}

func TestNotificationHandler_MarkNotificationRead_Forbidden(t *testing.T) {
	handler := NewNotificationHandler(&mockNotificationService{
		markReadFn: func(context.Context, authorization.Actor, string) (*notifDto.NotificationDTO, error) {
			return nil, errors.NewForbiddenError("notification belongs to another user")
		},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/notifications/ntf_1/read", nil)
	testutil.SetAuthContext(c, testutil.Student)
	testutil.SetURLParam(c, "id", "ntf_1")
	handler.MarkNotificationRead(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_GetMe(t *testing.T) {
	handler := NewUserHandler(&mockUserService{
		getFn: func(_ context.Context, userID string) (*userDto.UserResponse, error) {
			return &userDto.UserResponse{ID: userID, Credibility: 50, Role: "STUDENT"}, nil
		},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/users/me", nil)
	testutil.SetAuthContext(c, testutil.Student)
	handler.GetMe(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var me userDto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, testutil.Student.ID, me.ID)
	assert.Equal(t, 50, me.Credibility)
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		svcErr   error
		wantCode int
	}{
		{"created", map[string]any{"name": "Amina Yusuf", "role": "STUDENT", "department_id": "dep_1"}, nil, http.StatusCreated},
		{"unknown role", map[string]any{"name": "Amina Yusuf", "role": "DEAN"}, nil, http.StatusBadRequest},
		{"unknown department", map[string]any{"name": "Amina Yusuf", "role": "STUDENT", "department_id": "dep_x"}, errors.NewNotFoundError("department not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(&mockUserService{
				createFn: func(_ context.Context, _ authorization.Actor, req userDto.CreateUserRequest) (*userDto.UserResponse, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &userDto.UserResponse{ID: "usr_new", Name: req.Name, Role: req.Role, Credibility: 50}, nil
				},
			}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/users", tt.body)
			testutil.SetAuthContext(c, testutil.Admin)
			handler.CreateUser(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestUserHandler_AdjustCredibility(t *testing.T) {
	var gotUser string
	handler := NewUserHandler(&mockUserService{
		adjustFn: func(_ context.Context, _ authorization.Actor, userID string, req userDto.AdjustCredibilityRequest) (*userDto.CredibilityResponse, error) {
			gotUser = userID
			return &userDto.CredibilityResponse{UserID: userID, Rule: req.Rule, Credibility: 35}, nil
		},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/users/usr_a/credibility", map[string]any{"rule": "FAKE_REPORT"})
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetURLParam(c, "id", "usr_a")
	handler.AdjustCredibility(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "usr_a", gotUser)

	c, w = testutil.NewTestContext(http.MethodPost, "/users/usr_a/credibility", map[string]any{"rule": "BONUS"})
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetURLParam(c, "id", "usr_a")
	handler.AdjustCredibility(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepartmentHandler(t *testing.T) {
	svc := &mockDepartmentService{
		createFn: func(_ context.Context, actor authorization.Actor, req deptDto.CreateDepartmentRequest) (*deptDto.DepartmentDTO, error) {
			if !actor.IsAdmin() {
				return nil, errors.NewForbiddenError("ADMIN role required")
			}
			return &deptDto.DepartmentDTO{ID: "dep_1", Name: req.Name, Code: req.Code}, nil
		},
		listFn: func(context.Context) ([]*deptDto.DepartmentDTO, error) {
			return []*deptDto.DepartmentDTO{{ID: "dep_1", Code: "CS"}}, nil
		},
	}
	handler := NewDepartmentHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/departments", map[string]any{"name": "Computer Science", "code": "CS"})
	testutil.SetAuthContext(c, testutil.Admin)
	handler.CreateDepartment(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testutil.NewTestContext(http.MethodPost, "/departments", map[string]any{"name": "Computer Science", "code": "CS"})
	testutil.SetAuthContext(c, testutil.Student)
	handler.CreateDepartment(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/departments", nil)
	handler.ListDepartments(c)
	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var items []deptDto.DepartmentDTO
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	assert.Len(t, items, 1)
}
