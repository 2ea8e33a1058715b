package server

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"pasithulir/internal/utils"
	"pasithulir/pkg/types"

	"github.com/go-playground/validator/v10"
)

// datetime-local inputs post without a timezone.
const expiryInputLayout = "2006-01-02T15:04"

func init() {
	// Key validation errors by the form tag so templates can highlight inputs.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func (s *Service) handleGetContact(w http.ResponseWriter, r *http.Request) {
	data := &types.ContactPageData{
		BasePageData: types.BasePageData{Title: "Contact Us"},
	}

	if err := s.renderTemplate(w, r, "page.contact", data); err != nil {
		s.logger.WithError(err).Error("failed to render contact page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var contactForm types.ContactForm
	if err := decoder.Decode(&contactForm, r.PostForm); err != nil {
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	data := &types.ContactPageData{
		BasePageData: types.BasePageData{Title: "Contact Us"},
		Form:         contactForm,
	}

	data.FieldErrors = fieldErrors(validate.Struct(contactForm))
	if len(data.FieldErrors) > 0 {
		data.Error = "Please fix the highlighted fields."
		if err := s.renderTemplate(w, r, "page.contact", data); err != nil {
			s.logger.WithError(err).Error("failed to render contact page with validation errors")
			s.internalServerError(w)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := s.contactRepo.CreateContactMessage(ctx,
		contactForm.Name, contactForm.Email, contactForm.Phone,
		contactForm.Subject, contactForm.Message)
	if err != nil {
		s.logger.WithError(err).Error("failed to submit contact message")
		s.redirectWithError(w, r, "unable to send your message right now")
		return
	}

	s.redirectWithNotice(w, r, "Message sent. We'll get back to you within 24 hours.")
}

func (s *Service) handleGetDonate(w http.ResponseWriter, r *http.Request) {
	data := &types.DonatePageData{
		BasePageData: types.BasePageData{Title: "Donate Food"},
	}

	if err := s.renderTemplate(w, r, "page.donate", data); err != nil {
		s.logger.WithError(err).Error("failed to render donate page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostDonate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var donationForm types.DonationForm
	if err := decoder.Decode(&donationForm, r.PostForm); err != nil {
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	data := &types.DonatePageData{
		BasePageData: types.BasePageData{Title: "Donate Food"},
		Form:         donationForm,
	}

	data.FieldErrors = fieldErrors(validate.Struct(donationForm))

	expiry, err := time.ParseInLocation(expiryInputLayout, donationForm.ExpiryTime, time.Local)
	if err != nil && donationForm.ExpiryTime != "" {
		data.FieldErrors["expiry_time"] = "Enter a valid date and time."
	}

	if len(data.FieldErrors) > 0 {
		data.Error = "Please fix the highlighted fields."
		if err := s.renderTemplate(w, r, "page.donate", data); err != nil {
			s.logger.WithError(err).Error("failed to render donate page with validation errors")
			s.internalServerError(w)
		}
		return
	}

	donation := &types.Donation{
		DonorName:        donationForm.DonorName,
		OrganizationType: donationForm.OrganizationType,
		ContactNumber:    donationForm.ContactNumber,
		Email:            utils.NullableString(donationForm.Email),
		Address:          donationForm.Address,
		FoodType:         donationForm.FoodType,
		Quantity:         donationForm.Quantity,
		ExpiryTime:       expiry,
		Description:      utils.NullableString(donationForm.Description),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.donationRepo.CreateDonation(ctx, donation); err != nil {
		s.logger.WithError(err).Error("failed to submit donation")
		s.redirectWithError(w, r, "unable to submit your donation right now")
		return
	}

	s.logger.WithField("donation_id", donation.ID).Info("donation submitted")

	s.redirectWithNotice(w, r, "Donation submitted. Thank you for sharing your food!")
}

func (s *Service) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	data := &types.RequestPageData{
		BasePageData: types.BasePageData{Title: "Request Food"},
	}

	if err := s.renderTemplate(w, r, "page.request", data); err != nil {
		s.logger.WithError(err).Error("failed to render request page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var requestForm types.RequestForm
	if err := decoder.Decode(&requestForm, r.PostForm); err != nil {
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	data := &types.RequestPageData{
		BasePageData: types.BasePageData{Title: "Request Food"},
		Form:         requestForm,
	}

	data.FieldErrors = fieldErrors(validate.Struct(requestForm))
	if len(data.FieldErrors) > 0 {
		data.Error = "Please fix the highlighted fields."
		if err := s.renderTemplate(w, r, "page.request", data); err != nil {
			s.logger.WithError(err).Error("failed to render request page with validation errors")
			s.internalServerError(w)
		}
		return
	}

	request := &types.Request{
		OrganizationName:    requestForm.OrganizationName,
		OrganizationType:    requestForm.OrganizationType,
		ContactPerson:       requestForm.ContactPerson,
		ContactNumber:       requestForm.ContactNumber,
		Email:               utils.NullableString(requestForm.Email),
		Address:             requestForm.Address,
		PeopleCount:         requestForm.PeopleCount,
		UrgencyLevel:        requestForm.UrgencyLevel,
		PreferredTime:       requestForm.PreferredTime,
		DietaryRestrictions: utils.NullableString(requestForm.DietaryRestrictions),
		Description:         utils.NullableString(requestForm.Description),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		s.logger.WithError(err).Error("failed to submit request")
		s.redirectWithError(w, r, "unable to submit your request right now")
		return
	}

	s.logger.WithField("request_id", request.ID).Info("food request submitted")

	s.redirectWithNotice(w, r, "Request submitted. Our team will reach out shortly.")
}

var validationMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"oneof":    "Choose one of the listed options.",
}

func fieldErrors(err error) map[string]string {
	errs := map[string]string{}
	if err == nil {
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errs["form"] = "Some details are invalid. Please review and try again."
		return errs
	}

	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "min":
			errs[fe.Field()] = "Enter a value of at least " + fe.Param() + "."
		default:
			msg, ok := validationMessages[fe.Tag()]
			if !ok {
				msg = "This value is invalid."
			}
			errs[fe.Field()] = msg
		}
	}

	return errs
}
