package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1000), minorUnits(10))
	assert.Equal(t, int64(1050), minorUnits(10.5))
	assert.Equal(t, int64(1), minorUnits(0.014))
	assert.Equal(t, int64(0), minorUnits(0))
}

// Absent or non-positive amounts are rejected before any processor
// call is made.
func TestCreatePaymentIntent_MissingAmount(t *testing.T) {
	w := serve(t, http.MethodPost, "/create_payment_intent", CreatePaymentIntent(testConfig()),
		"/create_payment_intent", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "donationAmount")
}

func TestCreatePaymentIntent_ZeroAmount(t *testing.T) {
	w := serve(t, http.MethodPost, "/create_payment_intent", CreatePaymentIntent(testConfig()),
		"/create_payment_intent", `{"donationAmount":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePaymentIntent_NegativeAmount(t *testing.T) {
	w := serve(t, http.MethodPost, "/create_payment_intent", CreatePaymentIntent(testConfig()),
		"/create_payment_intent", `{"donationAmount":-5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordDonation_InvalidCampaignID(t *testing.T) {
	body := `{"campaign_id":"nope","donor_email":"d@example.com","amount":10,"status":"success"}`
	w := serve(t, http.MethodPost, "/donationPayment", RecordDonation(testConfig()),
		"/donationPayment", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid campaign id")
}

func TestRecordDonation_MissingAmount(t *testing.T) {
	body := `{"campaign_id":"64b5fc2e8f1b2c3d4e5f6a7b","donor_email":"d@example.com"}`
	w := serve(t, http.MethodPost, "/donationPayment", RecordDonation(testConfig()),
		"/donationPayment", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDonation_InvalidID(t *testing.T) {
	w := serve(t, http.MethodGet, "/donationPayment/:id", GetDonation(testConfig()),
		"/donationPayment/xyz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid donation id")
}

func TestRefundDonation_InvalidID(t *testing.T) {
	w := serve(t, http.MethodDelete, "/refund/:id", RefundDonation(testConfig()),
		"/refund/xyz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDonorHistoryByEmail_MissingEmail(t *testing.T) {
	w := serve(t, http.MethodGet, "/donarDataByEmail", DonorHistoryByEmail(testConfig()),
		"/donarDataByEmail", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}
