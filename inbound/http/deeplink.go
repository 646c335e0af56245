package http

import (
	"log/slog"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"masjid-events/deeplink"
	"masjid-events/model"
	"net/http"
)

type DeeplinkHttp struct {
	Resolver *deeplink.Resolver
}

func RegisterDeeplinkHttp(mux *http.ServeMux, resolver *deeplink.Resolver) *DeeplinkHttp {
	in := &DeeplinkHttp{Resolver: resolver}

	mux.HandleFunc("GET /api/deeplink", in.resolve)

	return in
}

// resolve reconciles the ?id= an opened push notification planted in the
// page URL. The response carries the scrubbed URL the client must apply
// with a history replace.
func (in *DeeplinkHttp) resolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	candidateId := query.Get(deeplink.Param)
	if candidateId == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Missing deep link id"})
		return
	}

	visitorId := query.Get("visitor")
	if visitorId == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Missing visitor id"})
		return
	}

	ctx := r.Context()
	outcome, err := in.Resolver.Resolve(ctx, visitorId, candidateId)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	resp := model.DeeplinkResolveResponse{
		Deferred:   outcome.Deferred,
		Matched:    outcome.Matched,
		OpenTicket: outcome.OpenTicket,
		Event:      outcome.Event,
	}

	if pageUrl := query.Get("url"); pageUrl != "" && !outcome.Deferred {
		clean, scrubErr := deeplink.ScrubURL(pageUrl)
		if scrubErr != nil {
			slog.WarnContext(ctx, "failed to scrub page url", slog.Any(constant.LogFieldErr, scrubErr))
		} else {
			resp.CleanUrl = clean
		}
	}

	writeJSONResponse(w, http.StatusOK, resp)
}
