package domain

import (
	"errors"
	"net/http"
)

// Generic sentinel errors shared across layers.
var (
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("your requested item is not found")
	ErrConflict            = errors.New("your item already exists")
	ErrBadParamInput       = errors.New("given param is not valid")
	ErrForbidden           = errors.New("you are not allowed to perform this action")
)

// Sentinel errors raised by entity validation and the repositories. The
// messages are stable identifiers namespaced by the originating entity;
// Translate maps them to client-facing errors at the REST boundary.
var (
	ErrNewThreadMissingProperty = errors.New("NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNewThreadTitleLimit      = errors.New("NEW_THREAD.TITLE_LIMIT_CHAR")

	ErrNewCommentMissingProperty = errors.New("NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")

	ErrNewReplyMissingProperty = errors.New("NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNewReplyEmptyContent    = errors.New("NEW_REPLY.EMPTY_CONTENT")

	ErrThreadMissingProperty  = errors.New("THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentMissingProperty = errors.New("COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")

	ErrAddedThreadMissingProperty  = errors.New("ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddedCommentMissingProperty = errors.New("ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddedReplyMissingProperty   = errors.New("ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")

	ErrThreadDetailMissingProperty  = errors.New("THREAD_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrThreadDetailInvalidType      = errors.New("THREAD_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrCommentDetailMissingProperty = errors.New("COMMENT_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentDetailInvalidType     = errors.New("COMMENT_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrReplyDetailMissingProperty   = errors.New("REPLY_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrReplyDetailInvalidType       = errors.New("REPLY_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")

	ErrThreadNotFound     = errors.New("THREAD.NOT_FOUND")
	ErrCommentNotFound    = errors.New("COMMENT.NOT_FOUND")
	ErrCommentNotInThread = errors.New("COMMENT.NOT_FOUND_IN_THREAD")
	ErrReplyNotFound      = errors.New("REPLY.NOT_FOUND")
	ErrCommentForbidden   = errors.New("COMMENT.NOT_THE_OWNER")
	ErrReplyForbidden     = errors.New("REPLY.NOT_THE_OWNER")

	ErrRegisterUserMissingProperty    = errors.New("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrRegisterUserUsernameLimit      = errors.New("REGISTER_USER.USERNAME_LIMIT_CHAR")
	ErrRegisterUserUsernameRestricted = errors.New("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	ErrUsernameUnavailable            = errors.New("REGISTER_USER.USERNAME_UNAVAILABLE")
	ErrUserLoginMissingProperty       = errors.New("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrWrongCredential                = errors.New("USER_LOGIN.WRONG_CREDENTIAL")
	ErrRefreshAuthMissingToken        = errors.New("REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN")
	ErrDeleteAuthMissingToken         = errors.New("DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN")
	ErrRefreshTokenInvalid            = errors.New("AUTHENTICATION.REFRESH_TOKEN_INVALID")
)

// ClientError is a translated, user-facing error carrying the HTTP status
// the REST layer should answer with.
type ClientError struct {
	Status  int
	Message string
}

func (e ClientError) Error() string { return e.Message }

func NewInvariantError(message string) ClientError {
	return ClientError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) ClientError {
	return ClientError{Status: http.StatusNotFound, Message: message}
}

func NewAuthorizationError(message string) ClientError {
	return ClientError{Status: http.StatusForbidden, Message: message}
}

func NewAuthenticationError(message string) ClientError {
	return ClientError{Status: http.StatusUnauthorized, Message: message}
}

// translations is the static lookup table from internal sentinel errors to
// their client-facing form. Read-only after construction.
var translations = map[error]ClientError{
	ErrNewThreadMissingProperty: NewInvariantError("harus mengirimkan title dan body"),
	ErrNewThreadTitleLimit:      NewInvariantError("panjang title melebihi batas limit"),

	ErrNewCommentMissingProperty: NewInvariantError("harus mengirimkan content"),

	ErrNewReplyMissingProperty: NewInvariantError("harus mengirimkan content"),
	ErrNewReplyEmptyContent:    NewInvariantError("content balasan tidak boleh kosong"),

	ErrThreadMissingProperty:  NewInvariantError("tidak dapat membuat thread karena properti yang dibutuhkan tidak ada"),
	ErrCommentMissingProperty: NewInvariantError("tidak dapat membuat comment karena properti yang dibutuhkan tidak ada"),

	ErrAddedThreadMissingProperty:  NewInvariantError("tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"),
	ErrAddedCommentMissingProperty: NewInvariantError("tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada"),
	ErrAddedReplyMissingProperty:   NewInvariantError("tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada"),

	ErrThreadDetailMissingProperty:  NewInvariantError("tidak dapat membuat thread detail karena properti yang dibutuhkan tidak ada"),
	ErrThreadDetailInvalidType:      NewInvariantError("tidak dapat membuat thread detail karena tipe data tidak sesuai"),
	ErrCommentDetailMissingProperty: NewInvariantError("tidak dapat membuat comment detail karena properti yang dibutuhkan tidak ada"),
	ErrCommentDetailInvalidType:     NewInvariantError("tidak dapat membuat comment detail karena tipe data tidak sesuai"),
	ErrReplyDetailMissingProperty:   NewInvariantError("tidak dapat membuat reply detail karena properti yang dibutuhkan tidak ada"),
	ErrReplyDetailInvalidType:       NewInvariantError("tidak dapat membuat reply detail karena tipe data tidak sesuai"),

	ErrThreadNotFound:     NewNotFoundError("thread tidak ditemukan"),
	ErrCommentNotFound:    NewNotFoundError("komentar tidak ditemukan"),
	ErrCommentNotInThread: NewNotFoundError("komentar pada thread ini tidak ditemukan"),
	ErrReplyNotFound:      NewNotFoundError("balasan tidak ditemukan"),
	ErrCommentForbidden:   NewAuthorizationError("anda tidak berhak mengakses komentar ini"),
	ErrReplyForbidden:     NewAuthorizationError("anda tidak berhak mengakses balasan ini"),

	ErrRegisterUserMissingProperty:    NewInvariantError("tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"),
	ErrRegisterUserUsernameLimit:      NewInvariantError("tidak dapat membuat user baru karena karakter username melebihi batas limit"),
	ErrRegisterUserUsernameRestricted: NewInvariantError("tidak dapat membuat user baru karena username mengandung karakter terlarang"),
	ErrUsernameUnavailable:            NewInvariantError("username tidak tersedia"),
	ErrUserLoginMissingProperty:       NewInvariantError("harus mengirimkan username dan password"),
	ErrWrongCredential:                NewAuthenticationError("kredensial yang Anda masukkan salah"),
	ErrRefreshAuthMissingToken:        NewInvariantError("harus mengirimkan token refresh"),
	ErrDeleteAuthMissingToken:         NewInvariantError("harus mengirimkan token refresh"),
	ErrRefreshTokenInvalid:            NewInvariantError("refresh token tidak valid"),
}

// Translate maps an internal sentinel error to its client-facing form.
// Errors without a translation pass through unchanged and surface as
// unexpected failures.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if client, ok := translations[err]; ok {
		return client
	}
	for sentinel, client := range translations {
		if errors.Is(err, sentinel) {
			return client
		}
	}
	return err
}
