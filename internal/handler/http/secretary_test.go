package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

const secretaryQuery = "username=segreteria&password=pw-123456"

func expectSecretary(deps testDeps) *models.Secretary {
	secretary := &models.Secretary{ID: secretaryID, Username: "segreteria"}
	deps.secretaries.EXPECT().Authenticate(gomock.Any(), "segreteria", "pw-123456", gomock.Any()).Return(secretary, nil)
	return secretary
}

func TestApproveAgency(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			router, deps := newTestRouter(t)
			expectSecretary(deps)
			deps.approval.EXPECT().Transition(gomock.Any(), agencyID, models.ActionApprove).
				Return(&models.Agency{ID: agencyID, ApprovalStatus: models.ApprovalApproved}, nil)

			rec := serve(router, httptest.NewRequest(method, "/api/secretary/approve/"+agencyID+"?action=approve&"+secretaryQuery, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"approvalStatus":"approved"`)
		})
	}
}

func TestApproveAgency_InvalidInput(t *testing.T) {
	router, deps := newTestRouter(t)
	expectSecretary(deps)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/secretary/approve/nope?action=maybe&"+secretaryQuery, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidID+", "+app.MsgApprovalActionInvalid, errorMessage(t, rec))
}

func TestSecretaryDeleteAgency_Notify(t *testing.T) {
	tests := []struct {
		query      string
		wantNotify bool
	}{
		{"", true},
		{"&notifyAgency=yes", true},
		{"&notifyAgency=no", false},
	}

	for _, tt := range tests {
		t.Run("notify="+tt.query, func(t *testing.T) {
			router, deps := newTestRouter(t)
			expectSecretary(deps)
			deps.moderation.EXPECT().DeleteAgency(gomock.Any(), agencyID, tt.wantNotify).Return(nil)

			rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/secretary/deleteagency/"+agencyID+"?"+secretaryQuery+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestSecretaryDeleteJobOffer(t *testing.T) {
	t.Run("missing offer", func(t *testing.T) {
		router, deps := newTestRouter(t)
		expectSecretary(deps)
		deps.moderation.EXPECT().DeleteJobOffer(gomock.Any(), jobOfferID, false).Return(service.ErrJobOfferNotFound)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/secretary/deletejoboffer/"+jobOfferID+"?notifyAgency=no&"+secretaryQuery, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgJobOfferNotFound, errorMessage(t, rec))
	})

	t.Run("invalid notify flag", func(t *testing.T) {
		router, deps := newTestRouter(t)
		expectSecretary(deps)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/secretary/deletejoboffer/"+jobOfferID+"?notifyAgency=maybe&"+secretaryQuery, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgNotifyAgencyInvalid, errorMessage(t, rec))
	})
}

func TestRotateSecretaryPassword(t *testing.T) {
	router, deps := newTestRouter(t)
	secretary := expectSecretary(deps)
	deps.secretaries.EXPECT().RotatePassword(gomock.Any(), secretary).Return("N3wGeneratedPassw", nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/secretary/newpassword?"+secretaryQuery, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"password":"N3wGeneratedPassw"}`, rec.Body.String())
}
