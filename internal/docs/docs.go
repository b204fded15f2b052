// Package docs registra en swag el documento OpenAPI que sirve /swagger/*.
// Se mantiene a mano: cada ruta nueva con anotaciones @Router en su handler
// tiene que aparecer también en docTemplate.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/plans": {
            "get": {
                "description": "Devuelve los planes de suscripción del backend, en el orden original.",
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Listar planes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/plans.PlansResponse"}},
                    "502": {"description": "upstream error", "schema": {"type": "string"}}
                }
            }
        },
        "/plans/{planID}/features/{feature}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Consultar si un plan incluye una feature",
                "parameters": [
                    {"type": "string", "description": "ID del plan", "name": "planID", "in": "path", "required": true},
                    {"type": "string", "description": "Feature", "name": "feature", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "plan not found", "schema": {"type": "string"}},
                    "502": {"description": "upstream error", "schema": {"type": "string"}}
                }
            }
        },
        "/animals": {
            "get": {
                "description": "Animales no borrados. Con property_id filtra por fazenda, salvo all=true.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar animales",
                "parameters": [
                    {"type": "string", "description": "Propiedad seleccionada", "name": "property_id", "in": "query"},
                    {"type": "boolean", "description": "Todas las propiedades", "name": "all", "in": "query"},
                    {"type": "string", "description": "table = filas planas para la grilla", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "all inválido", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Registrar animal",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid json / reglas de negocio", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Obtener animal",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}/locations": {
            "get": {
                "description": "Ordenado por fecha de entrada.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Histórico de locales del animal",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.locationResponse"}}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Registrar entrada del animal en un local",
                "parameters": [
                    {"type": "string", "description": "ID del animal", "name": "animalID", "in": "path", "required": true},
                    {"description": "Local y fechas (RFC3339)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.recordLocationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animals.locationResponse"}},
                    "400": {"description": "invalid json / fechas", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/buyers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["buyers"],
                "summary": "Listar compradores",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["buyers"],
                "summary": "Registrar comprador",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid json / reglas de negocio", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/buyers/{buyerID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["buyers"],
                "summary": "Obtener comprador",
                "parameters": [
                    {"type": "string", "description": "ID del comprador", "name": "buyerID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "buyer not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["buyers"],
                "summary": "Borrar comprador (soft delete)",
                "parameters": [
                    {"type": "string", "description": "ID del comprador", "name": "buyerID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "buyer not found", "schema": {"type": "string"}}
                }
            }
        },
        "/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Listar funcionarios",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Registrar funcionario",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid json / reglas de negocio", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/employees/{employeeID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Obtener funcionario",
                "parameters": [
                    {"type": "string", "description": "ID del funcionario", "name": "employeeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "employee not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["employees"],
                "summary": "Borrar funcionario (soft delete)",
                "parameters": [
                    {"type": "string", "description": "ID del funcionario", "name": "employeeID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "employee not found", "schema": {"type": "string"}}
                }
            }
        },
        "/properties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Listar propiedades (fazendas)",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Registrar propiedad",
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/properties/{propertyID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Obtener propiedad",
                "parameters": [
                    {"type": "string", "description": "ID de la propiedad", "name": "propertyID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "property not found", "schema": {"type": "string"}}
                }
            }
        },
        "/display/animal-statuses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Tabla de status de animales (label y color)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/display.Entry"}}}
                }
            }
        },
        "/display/animal-phases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Tabla de fases de animales (label y color)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/display.Entry"}}}
                }
            }
        },
        "/display/icons": {
            "get": {
                "produces": ["application/json"],
                "tags": ["display"],
                "summary": "Tamaños de íconos y paleta",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "animals.locationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "animalId": {"type": "string"},
                "locationId": {"type": "string"},
                "entryDate": {"type": "string"},
                "exitDate": {"type": "string"}
            }
        },
        "animals.recordLocationRequest": {
            "type": "object",
            "properties": {
                "locationId": {"type": "string"},
                "entryDate": {"type": "string"},
                "exitDate": {"type": "string"}
            }
        },
        "display.Entry": {
            "type": "object",
            "properties": {
                "value": {"type": "string"},
                "label": {"type": "string"},
                "icon": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "plans.Plan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "annualPrice": {"type": "number"},
                "description": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "isPopular": {"type": "boolean"}
            }
        },
        "plans.PlansResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/plans.Plan"}},
                "count": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Boi na Nuvem API",
	Description:      "Backend de gestión de rebaño: planes, animales, compradores, funcionarios y fazendas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
