package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Events API",
        "description": "Colleges, students, events, registrations, attendance, feedback and reports",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Colleges, students and events"},
        {"name": "Participation", "description": "Registrations, attendance and feedback"},
        {"name": "Reports", "description": "Read-only aggregates"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (pings the database)",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/college": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Create college",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CreateCollegeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CollegeCreatedResponse"}},
                    "400": {"description": "Missing name or duplicate", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/student": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Create student",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StudentCreatedResponse"}},
                    "400": {"description": "Missing name or unknown college", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/event": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Create event",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/EventCreatedResponse"}},
                    "400": {"description": "Missing name or unknown college", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List events",
                "parameters": [
                    {"in": "query", "name": "college_id", "type": "integer"},
                    {"in": "query", "name": "type", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EventDetail"}}},
                    "400": {"description": "Invalid college_id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/register": {
            "post": {
                "tags": ["Participation"],
                "summary": "Register a student for an event",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registered", "schema": {"$ref": "#/definitions/RegistrationResponse"}},
                    "200": {"description": "Already registered", "schema": {"$ref": "#/definitions/RegistrationResponse"}},
                    "400": {"description": "Missing ids or unknown student/event", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/attendance": {
            "post": {
                "tags": ["Participation"],
                "summary": "Mark attendance",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Attendance marked", "schema": {"$ref": "#/definitions/AttendanceResponse"}},
                    "200": {"description": "Attendance updated", "schema": {"$ref": "#/definitions/AttendanceResponse"}},
                    "400": {"description": "Missing identifiers or unknown registration", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Registration not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/feedback": {
            "post": {
                "tags": ["Participation"],
                "summary": "Submit feedback",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/SubmitFeedbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Feedback saved", "schema": {"$ref": "#/definitions/FeedbackResponse"}},
                    "200": {"description": "Feedback updated", "schema": {"$ref": "#/definitions/FeedbackResponse"}},
                    "400": {"description": "Missing fields or rating out of range", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/report/registrations": {
            "get": {
                "tags": ["Reports"],
                "summary": "Registrations per event",
                "parameters": [
                    {"in": "query", "name": "college_id", "type": "integer"},
                    {"in": "query", "name": "type", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EventRegistrationSummary"}}},
                    "400": {"description": "Invalid college_id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/report/registrations/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download registrations per event",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"in": "query", "name": "format", "type": "string", "enum": ["csv", "pdf"]},
                    {"in": "query", "name": "college_id", "type": "integer"},
                    {"in": "query", "name": "type", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File attachment", "schema": {"type": "file"}},
                    "400": {"description": "Invalid format or college_id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/report/attendance/{event_id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Attendance for an event",
                "parameters": [
                    {"in": "path", "name": "event_id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AttendanceReport"}},
                    "404": {"description": "Not an event id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/report/feedback/{event_id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Feedback for an event",
                "parameters": [
                    {"in": "path", "name": "event_id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FeedbackReport"}},
                    "404": {"description": "Not an event id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/report/active-students": {
            "get": {
                "tags": ["Reports"],
                "summary": "Most active students",
                "parameters": [
                    {"in": "query", "name": "top", "type": "integer", "default": 3, "minimum": 1}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ActiveStudent"}}},
                    "400": {"description": "Invalid top", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "detail": {"type": "string"}
            }
        },
        "CreateCollegeRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "CollegeCreatedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "college_id": {"type": "integer"}}
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "college_id": {"type": "integer"}
            }
        },
        "StudentCreatedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "student_id": {"type": "integer"}}
        },
        "CreateEventRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "college_id": {"type": "integer"},
                "start_date": {"type": "string", "format": "date"},
                "end_date": {"type": "string", "format": "date"}
            }
        },
        "EventCreatedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "event_id": {"type": "integer"}}
        },
        "EventDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "college_id": {"type": "integer"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "college_name": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["student_id", "event_id"],
            "properties": {"student_id": {"type": "integer"}, "event_id": {"type": "integer"}}
        },
        "RegistrationResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "registration_id": {"type": "integer"}}
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "properties": {
                "registration_id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "event_id": {"type": "integer"},
                "status": {"type": "string", "default": "present"}
            }
        },
        "AttendanceResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "attendance_id": {"type": "integer"}}
        },
        "SubmitFeedbackRequest": {
            "type": "object",
            "required": ["registration_id", "rating"],
            "properties": {
                "registration_id": {"type": "integer"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "comment": {"type": "string"}
            }
        },
        "FeedbackResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "feedback_id": {"type": "integer"}}
        },
        "EventRegistrationSummary": {
            "type": "object",
            "properties": {
                "event_id": {"type": "integer"},
                "event_name": {"type": "string"},
                "event_type": {"type": "string"},
                "college_name": {"type": "string"},
                "total_registrations": {"type": "integer"}
            }
        },
        "AttendanceReport": {
            "type": "object",
            "properties": {
                "event_id": {"type": "integer"},
                "total_registered": {"type": "integer"},
                "total_attended": {"type": "integer"},
                "attendance_percentage": {"type": "number"}
            }
        },
        "FeedbackReport": {
            "type": "object",
            "properties": {
                "event_id": {"type": "integer"},
                "average_feedback": {"type": "number"},
                "count_feedback": {"type": "integer"}
            }
        },
        "ActiveStudent": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "student_name": {"type": "string"},
                "attended_count": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
