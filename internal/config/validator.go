package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("file", isFileReadable); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	validate.RegisterStructValidation(validateServerTLS, ServerConfig{})
	validate.RegisterStructValidation(validateSchedulerIntervals, SchedulerConfig{})

	translations := map[string]string{
		"file":         "{0} must be an existing and readable file",
		"tls_pair":     "{0} must be set together with tls_cert_file",
		"interval_cap": "{0} must not be shorter than initial_interval and review_min_interval",
	}
	for tag, text := range translations {
		if err := registerTranslation(validate, trans, tag, text); err != nil {
			return nil, nil, err
		}
	}

	return validate, trans, nil
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, text, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."), fe.Param())
		return t
	}); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", tag, err)
	}
	return nil
}

func validateServerTLS(sl validator.StructLevel) {
	server := sl.Current().Interface().(ServerConfig)
	if (server.TLSCertFile == "") != (server.TLSKeyFile == "") {
		sl.ReportError(server.TLSKeyFile, "tls_key_file", "TLSKeyFile", "tls_pair", "")
	}
}

func validateSchedulerIntervals(sl validator.StructLevel) {
	scheduler := sl.Current().Interface().(SchedulerConfig)
	if scheduler.MaxInterval < scheduler.InitialInterval || scheduler.MaxInterval < scheduler.ReviewMinInterval {
		sl.ReportError(scheduler.MaxInterval, "max_interval", "MaxInterval", "interval_cap", "")
	}
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
