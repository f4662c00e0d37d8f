package app

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rda-dmp-common/madmp/dmp"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Documents are small; anything past this is not a DMP.
const maxDocumentSize = 10 << 20

// service exposes the validation engine over HTTP.
type service struct {
	logger  logrus.FieldLogger
	mux     *http.ServeMux
	decoder *schema.Decoder
	started time.Time

	checker        dmp.SchemaValidator
	defaultVersion string

	receivedDocuments prometheus.Counter
	invalidDocuments  prometheus.Counter
}

func newService(logger logrus.FieldLogger, config *Config, reg prometheus.Registerer) (*service, error) {
	checker, err := dmp.NewSchemaValidator(config.Validator.SchemaCheck)
	if err != nil {
		return nil, err
	}

	svc := &service{
		logger:         logger,
		decoder:        schema.NewDecoder(),
		started:        time.Now(),
		checker:        checker,
		defaultVersion: config.Validator.DefaultVersion,
		receivedDocuments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "madmp",
			Name:      "received_documents_total",
			Help:      "The total number of documents received for validation.",
		}),
		invalidDocuments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "madmp",
			Name:      "invalid_documents_total",
			Help:      "The total number of received documents that failed validation.",
		}),
	}
	svc.decoder.IgnoreUnknownKeys(true)

	if err := reg.Register(svc.receivedDocuments); err != nil {
		return nil, err
	}
	if err := reg.Register(svc.invalidDocuments); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/validate", svc.handleValidate)
	mux.HandleFunc("/v1/versions", svc.handleVersions)
	svc.mux = mux

	return svc, nil
}

func (s *service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// validateParams are the query parameters accepted by the validate resource.
type validateParams struct {
	Version string `schema:"version"`
}

type validateResponse struct {
	Valid      bool            `json:"valid"`
	Version    string          `json:"version"`
	Violations []dmp.Violation `json:"violations,omitempty"`
	Findings   []dmp.Violation `json:"schema_findings,omitempty"`
	Lint       []dmp.Violation `json:"lint,omitempty"`
}

func (s *service) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	s.receivedDocuments.Inc()

	params := validateParams{Version: s.defaultVersion}
	if err := s.decoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bundle, err := dmp.Select(params.Version)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stream, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := validateResponse{Version: bundle.Version()}

	doc, err := bundle.Parse(stream)
	if err != nil {
		s.invalidDocuments.Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := bundle.Validate(doc)
	if err != nil {
		verr := &dmp.ValidationError{}
		if !errors.As(err, &verr) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.invalidDocuments.Inc()
		resp.Violations = verr.Violations
		s.reply(w, http.StatusUnprocessableEntity, resp)
		return
	}

	findings, err := s.checker.Validate(stream, bundle.Version())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.Findings = findings
	if s.checker.Strict() && len(findings) > 0 {
		s.invalidDocuments.Inc()
		s.reply(w, http.StatusUnprocessableEntity, resp)
		return
	}

	resp.Valid = true
	resp.Lint = bundle.Lint(plan.DMP)
	s.reply(w, http.StatusOK, resp)
}

type versionsResponse struct {
	Versions []string `json:"versions"`
	Default  string   `json:"default"`
}

func (s *service) handleVersions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	s.reply(w, http.StatusOK, versionsResponse{Versions: dmp.Versions(), Default: s.defaultVersion})
}

func (s *service) reply(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Error encoding the response")
	}
}

// logStatus reports runtime details, delivered when SIGUSR1 is trapped.
func (s *service) logStatus() {
	s.logger.WithFields(logrus.Fields{
		"uptime":   time.Since(s.started).String(),
		"versions": strings.Join(dmp.Versions(), ", "),
	}).Info("Server status")
}
