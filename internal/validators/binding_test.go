package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type bookingReq struct {
	Date        string  `json:"date" binding:"required,isodate"`
	Time        string  `json:"time" binding:"required,hhmm"`
	BarberID    uint    `json:"barbero_id" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required,service_type"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
}

func TestIsHHMM(t *testing.T) {
	for _, ok := range []string{"00:00", "09:00", "18:59", "23:59"} {
		if !IsHHMM(ok) {
			t.Errorf("IsHHMM(%q) = false", ok)
		}
	}
	for _, bad := range []string{"9:00", "24:00", "12:60", "12:00:00", ""} {
		if IsHHMM(bad) {
			t.Errorf("IsHHMM(%q) = true", bad)
		}
	}
}

func TestRegisterAndTranslate(t *testing.T) {
	Register()
	Register()

	req := bookingReq{Date: "2025-02-30", Time: "9:00", ServiceType: "manicura"}
	err := binding.Validator.ValidateStruct(&req)
	if err == nil {
		t.Fatalf("expected validation errors")
	}

	fields := Translate(err)
	for _, f := range []string{"date", "time", "barbero_id", "service_type"} {
		if len(fields[f]) == 0 {
			t.Errorf("missing error for %s: %v", f, fields)
		}
	}
	if got := fields["time"][0]; got != "El campo time no corresponde al formato H:i." {
		t.Errorf("time message = %q", got)
	}
	wantService := "El campo service_type seleccionado es inválido. Valores permitidos: " +
		"corte, corte_barba, barba, corte_gratis, tinte, corte_tinte, corte_barba_tinte."
	if got := fields["service_type"][0]; got != wantService {
		t.Errorf("service_type message = %q", got)
	}

	good := bookingReq{Date: "2025-06-03", Time: "10:00", BarberID: 1, ServiceType: "corte_barba"}
	if err := binding.Validator.ValidateStruct(&good); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestTranslate_NonValidationError(t *testing.T) {
	fields := Translate(errString("unexpected EOF"))
	if len(fields["body"]) != 1 {
		t.Fatalf("fields = %v", fields)
	}
}

type errString string

func (e errString) Error() string { return string(e) }

type statusReq struct {
	Status string `json:"status" binding:"required,appointment_status"`
	Sort   string `json:"sort" binding:"required,oneof=asc desc"`
}

func TestTranslate_ListsAllowedValues(t *testing.T) {
	Register()

	err := binding.Validator.ValidateStruct(&statusReq{Status: "done", Sort: "up"})
	fields := Translate(err)
	if got, want := fields["status"][0], "El campo status seleccionado es inválido. Valores permitidos: pending, confirmed, completed, cancelled."; got != want {
		t.Errorf("status message = %q", got)
	}
	if got, want := fields["sort"][0], "El campo sort seleccionado es inválido. Valores permitidos: asc, desc."; got != want {
		t.Errorf("sort message = %q", got)
	}
}
