package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"assetflow/models"
	"assetflow/policy"
)

type ticketEnvelope struct {
	Message string `json:"message"`
	Ticket  Ticket `json:"ticket"`
}

func ticketPath(id int64, suffix string) string {
	return fmt.Sprintf("/maintenance/%d%s", id, suffix)
}

func (s *Session) ListTickets(ctx context.Context, q TicketQuery) ([]Ticket, error) {
	if err := s.precheck(policy.ViewTicket, nil); err != nil {
		return nil, err
	}
	tickets := []Ticket{}
	if err := s.getJSON(ctx, "/maintenance/", q.values(), &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *Session) GetTicket(ctx context.Context, id int64) (Ticket, error) {
	if err := s.precheck(policy.ViewTicket, nil); err != nil {
		return Ticket{}, err
	}
	var ticket Ticket
	if err := s.getJSON(ctx, ticketPath(id, ""), nil, &ticket); err != nil {
		return Ticket{}, err
	}
	return ticket, nil
}

// CreateTicket reports a problem with an asset. Employees may only report
// assets assigned to them; pass the asset to check that before sending.
func (s *Session) CreateTicket(ctx context.Context, in TicketInput, asset *models.Asset) (Ticket, error) {
	var resource *policy.Resource
	if asset != nil {
		resource = policy.AssetResource(*asset)
	}
	return s.mutateTicket(ctx, policy.CreateTicket, resource, http.MethodPost, "/maintenance/", in)
}

func (s *Session) UpdateTicket(ctx context.Context, id int64, in TicketUpdate) (Ticket, error) {
	return s.mutateTicket(ctx, policy.UpdateTicket, nil, http.MethodPut, ticketPath(id, ""), in)
}

func (s *Session) SetTicketStatus(ctx context.Context, id int64, status models.TicketStatus) (Ticket, error) {
	return s.mutateTicket(ctx, policy.ChangeTicketStatus, nil, http.MethodPut, ticketPath(id, "/status"),
		map[string]models.TicketStatus{"status": status})
}

func (s *Session) AssignTicket(ctx context.Context, id, userID int64) (Ticket, error) {
	return s.mutateTicket(ctx, policy.ChangeTicketAssignment, nil, http.MethodPut, ticketPath(id, "/assign"),
		map[string]int64{"user_id": userID})
}

func (s *Session) DeleteTicket(ctx context.Context, id int64) error {
	if err := s.precheck(policy.DeleteTicket, nil); err != nil {
		return err
	}
	return s.call(ctx, request{method: http.MethodDelete, path: ticketPath(id, "")}, nil)
}

func (s *Session) mutateTicket(ctx context.Context, action policy.Action, resource *policy.Resource, method, path string, payload interface{}) (Ticket, error) {
	if err := s.precheck(action, resource); err != nil {
		return Ticket{}, err
	}
	var out ticketEnvelope
	if err := s.sendJSON(ctx, method, path, payload, &out); err != nil {
		return Ticket{}, err
	}
	return out.Ticket, nil
}

// UploadAttachment sends a file as the ticket's attachment and returns the
// URL it is served from. The file is buffered so the request can be replayed
// after a token refresh.
func (s *Session) UploadAttachment(ctx context.Context, id int64, filename string, file io.Reader, known *models.MaintenanceTicket) (string, error) {
	var resource *policy.Resource
	if known != nil {
		resource = policy.TicketResource(*known)
	}
	if err := s.precheck(policy.UploadTicketAttachment, resource); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("client: failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("client: failed to read attachment: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("client: failed to build upload: %w", err)
	}

	var out struct {
		Message string `json:"message"`
		FileURL string `json:"file_url"`
	}
	req := request{
		method:      http.MethodPost,
		path:        ticketPath(id, "/upload"),
		body:        buf.Bytes(),
		contentType: form.FormDataContentType(),
	}
	if err := s.call(ctx, req, &out); err != nil {
		return "", err
	}
	return out.FileURL, nil
}
