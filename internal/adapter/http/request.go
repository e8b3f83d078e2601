package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"affiliate-tracker/internal/core/port"
)

// Query parameters arrive as strings and are coerced into typed request
// structs here, before any handler logic runs. A coercion failure is a
// client error carrying the message below; handlers never see a half-parsed
// request.

func parseLogClickReq(q url.Values) (port.LogClickReq, error) {
	affiliateID := q.Get("affiliate_id")
	campaignID := q.Get("campaign_id")
	token := q.Get("click_id")
	if affiliateID == "" || campaignID == "" || token == "" {
		return port.LogClickReq{}, errors.New("Missing affiliate_id, campaign_id, or click_id")
	}

	aid, err := strconv.ParseInt(affiliateID, 10, 64)
	if err != nil {
		return port.LogClickReq{}, errors.New("Invalid affiliate_id")
	}
	cid, err := strconv.ParseInt(campaignID, 10, 64)
	if err != nil {
		return port.LogClickReq{}, errors.New("Invalid campaign_id")
	}
	return port.LogClickReq{AffiliateID: aid, CampaignID: cid, Token: token}, nil
}

func parsePostbackReq(q url.Values) (port.PostbackReq, error) {
	affiliateID := q.Get("affiliate_id")
	token := q.Get("click_id")
	amount := q.Get("amount")
	currency := q.Get("currency")
	if affiliateID == "" || token == "" || amount == "" || currency == "" {
		return port.PostbackReq{}, errors.New("Missing affiliate_id, click_id, amount, or currency")
	}

	aid, err := strconv.ParseInt(affiliateID, 10, 64)
	if err != nil {
		return port.PostbackReq{}, errors.New("Invalid affiliate_id")
	}
	// Amount stays decimal text; parsing only validates it is numeric.
	if _, err = strconv.ParseFloat(amount, 64); err != nil {
		return port.PostbackReq{}, errors.New("Invalid amount")
	}
	return port.PostbackReq{AffiliateID: aid, Token: token, Amount: amount, Currency: currency}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
