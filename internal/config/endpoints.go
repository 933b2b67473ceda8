package config

import (
	"net/http"
	"net/url"
)

// Endpoint is a concrete request descriptor for one ELMS API operation.
type Endpoint struct {
	Method string
	Path   string
	base   string
}

// URL returns the absolute URL of the endpoint.
func (e Endpoint) URL() string {
	return e.base + e.Path
}

// Endpoints maps logical ELMS operations onto request descriptors for one base URL.
type Endpoints struct {
	base string
}

func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{base: baseURL}
}

func (e Endpoints) BaseURL() string { return e.base }

func (e Endpoints) endpoint(method, path string) Endpoint {
	return Endpoint{Method: method, Path: path, base: e.base}
}

// Employee endpoints

func (e Endpoints) EmployeeRegister() Endpoint {
	return e.endpoint(http.MethodPost, "/api/employees/register")
}

func (e Endpoints) EmployeeLogin() Endpoint {
	return e.endpoint(http.MethodPost, "/api/employees/login")
}

// Leave endpoints

func (e Endpoints) LeavesSubmit() Endpoint {
	return e.endpoint(http.MethodPost, "/api/leaves/submit")
}

func (e Endpoints) LeavesByEmployee(employeeID string) Endpoint {
	return e.endpoint(http.MethodGet, "/api/leaves/by-employee/"+url.PathEscape(employeeID))
}

func (e Endpoints) LeavesAll() Endpoint {
	return e.endpoint(http.MethodGet, "/api/leaves/all")
}

func (e Endpoints) LeavesUpdateStatus(id, status string) Endpoint {
	return e.endpoint(http.MethodPut, "/api/leaves/update-status/"+url.PathEscape(id)+"?status="+url.QueryEscape(status))
}

// Department head endpoints

func (e Endpoints) HeadsLogin() Endpoint {
	return e.endpoint(http.MethodPost, "/api/heads/login")
}

func (e Endpoints) HeadsAll() Endpoint {
	return e.endpoint(http.MethodGet, "/api/heads/all-heads")
}

func (e Endpoints) HeadsCreate() Endpoint {
	return e.endpoint(http.MethodPost, "/api/heads/create")
}

func (e Endpoints) HeadsUpdate(id string) Endpoint {
	return e.endpoint(http.MethodPut, "/api/heads/"+url.PathEscape(id))
}

func (e Endpoints) HeadsDelete(id string) Endpoint {
	return e.endpoint(http.MethodDelete, "/api/heads/"+url.PathEscape(id))
}

func (e Endpoints) HeadsToggleStatus(id string) Endpoint {
	return e.endpoint(http.MethodPatch, "/api/heads/"+url.PathEscape(id)+"/status")
}
