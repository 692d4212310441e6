package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_flashcard_study/internal/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// required はポインタ項目(correct 等)でも同じ文面にする
	Validator.RegisterTranslation("required", Trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is required.", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})

	// 誤答数は出題数を超えない
	Validator.RegisterStructValidation(studyCardInputValidation, model.StudyCardInput{})
	Validator.RegisterTranslation("lte_times_seen", Trans, func(ut ut.Translator) error {
		return ut.Add("lte_times_seen", "{0} must not exceed times_seen.", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("lte_times_seen", fe.Field())
		return t
	})
}

func studyCardInputValidation(sl validator.StructLevel) {
	in := sl.Current().Interface().(model.StudyCardInput)
	if in.TimesSeen == nil || in.TimesWrong == nil {
		return
	}
	if *in.TimesWrong > *in.TimesSeen {
		sl.ReportError(in.TimesWrong, "times_wrong", "TimesWrong", "lte_times_seen", "")
	}
}

// ValidateRequest は validate タグで検証し、最初の違反を VALIDATION_ERROR として返します。
func ValidateRequest(dst interface{}) error {
	err := Validator.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return model.NewAppError("VALIDATION_ERROR", "Request validation failed.", "", model.ErrInvalidInput)
	}

	first := verrs[0]
	return model.NewAppError("VALIDATION_ERROR", first.Translate(Trans), fieldPath(first), model.ErrInvalidInput)
}

// fieldPath は "CreateFlashcardRequest.flashcards[0].times_seen" のような名前空間から
// 先頭の構造体名を取り除きます。
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
