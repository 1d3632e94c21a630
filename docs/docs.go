// Package docs RentCar API 文档，路由注释见 api 包
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
        "/api/cars": {
            "get": {"tags": ["车辆"], "summary": "获取车辆列表", "parameters": [
                {"type": "string", "name": "brand", "in": "query"},
                {"type": "string", "name": "category", "in": "query"},
                {"type": "boolean", "name": "available", "in": "query"}
            ], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Car"}}}}},
            "post": {"tags": ["车辆"], "summary": "创建车辆", "parameters": [
                {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateCarRequest"}}
            ], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Car"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/cars/category/{category}": {
            "get": {"tags": ["车辆"], "summary": "按类别获取车辆", "parameters": [
                {"type": "string", "name": "category", "in": "path", "required": true, "enum": ["Sedan", "Cabriolet", "Pickup", "SUV", "Minivan"]}
            ], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Car"}}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/cars/{id}": {
            "get": {"tags": ["车辆"], "summary": "获取车辆详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Car"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}},
            "put": {"tags": ["车辆"], "summary": "更新车辆", "parameters": [
                {"type": "integer", "name": "id", "in": "path", "required": true},
                {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.UpdateCarRequest"}}
            ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Car"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}},
            "delete": {"tags": ["车辆"], "summary": "删除车辆", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/comments": {
            "get": {"tags": ["评论"], "summary": "获取全部评论", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}},
            "post": {"tags": ["评论"], "summary": "创建评论", "parameters": [
                {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateCommentRequest"}}
            ], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Comment"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/comments/{carId}": {
            "get": {"tags": ["评论"], "summary": "获取车辆评论", "parameters": [{"type": "integer", "name": "carId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}}
        },
        "/api/comments/{id}": {
            "put": {"tags": ["评论"], "summary": "更新评论", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comment"}}}},
            "delete": {"tags": ["评论"], "summary": "删除评论", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}}}
        },
        "/api/bookings": {
            "get": {"tags": ["预订"], "summary": "获取预订列表", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Booking"}}}}},
            "post": {"tags": ["预订"], "summary": "创建预订", "parameters": [
                {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateBookingRequest"}}
            ], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Booking"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/bookings/{id}": {
            "get": {"tags": ["预订"], "summary": "获取预订详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Booking"}}}},
            "put": {"tags": ["预订"], "summary": "更新预订", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Booking"}}}},
            "delete": {"tags": ["预订"], "summary": "删除预订", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}}}
        },
        "/api/regions": {
            "get": {"tags": ["地区"], "summary": "获取地区列表", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Region"}}}}},
            "post": {"tags": ["地区"], "summary": "创建地区", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Region"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/regions/{id}": {
            "put": {"tags": ["地区"], "summary": "修改地区", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Region"}}}},
            "delete": {"tags": ["地区"], "summary": "删除地区", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}}}
        },
        "/api/income": {
            "get": {"tags": ["收入"], "summary": "获取全部收入", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Income"}}}}},
            "post": {"tags": ["收入"], "summary": "创建每日收入", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Income"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/income/export/{year}": {
            "get": {"tags": ["收入"], "summary": "导出年度收入", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [{"type": "integer", "name": "year", "in": "path", "required": true}],
                "responses": {"200": {"description": "income-<year>.xlsx", "schema": {"type": "file"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/income/{year}": {
            "get": {"tags": ["收入"], "summary": "年度收入", "parameters": [{"type": "integer", "name": "year", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/income/{year}/{month}": {
            "get": {"tags": ["收入"], "summary": "月度收入", "parameters": [
                {"type": "integer", "name": "year", "in": "path", "required": true},
                {"type": "string", "name": "month", "in": "path", "required": true}
            ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/income/{year}/{month}/{day}": {
            "get": {"tags": ["收入"], "summary": "每日收入", "parameters": [
                {"type": "integer", "name": "year", "in": "path", "required": true},
                {"type": "string", "name": "month", "in": "path", "required": true},
                {"type": "integer", "name": "day", "in": "path", "required": true}
            ], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Income"}}}}
        },
        "/api/income/{id}": {
            "put": {"tags": ["收入"], "summary": "更新收入", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Income"}}}},
            "delete": {"tags": ["收入"], "summary": "删除收入", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.MessageResponse"}}}}
        }
    },
    "definitions": {
        "api.ErrorResponse": {"type": "object", "properties": {"message": {"type": "string"}, "error": {"type": "string"}}},
        "api.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "api.CreateCarRequest": {"type": "object", "required": ["brand", "category", "gallery", "name", "pricePerDay"], "properties": {
            "name": {"type": "string"}, "brand": {"type": "string"},
            "category": {"type": "string", "enum": ["Sedan", "Cabriolet", "Pickup", "SUV", "Minivan"]},
            "pricePerDay": {"type": "number"}, "imageUrl": {"type": "string"},
            "gallery": {"type": "array", "minItems": 4, "items": {"type": "string"}},
            "gearBox": {"type": "string"}, "fuel": {"type": "string"}, "doors": {"type": "integer"}, "seats": {"type": "integer"},
            "airConditioner": {"type": "boolean"}, "distance": {"type": "number"},
            "equipment": {"type": "array", "items": {"type": "string"}}, "available": {"type": "boolean"}}},
        "api.UpdateCarRequest": {"type": "object"},
        "api.CreateCommentRequest": {"type": "object", "required": ["carId", "text"], "properties": {
            "carId": {"type": "integer"}, "author": {"type": "string"}, "name": {"type": "string"}, "text": {"type": "string"}}},
        "api.CreateBookingRequest": {"type": "object", "required": ["carId", "phoneNumber", "placeOfRental", "placeOfReturn", "rentalDate", "returnDate"], "properties": {
            "carId": {"type": "integer"}, "placeOfRental": {"type": "string"}, "placeOfReturn": {"type": "string"},
            "rentalDate": {"type": "string"}, "returnDate": {"type": "string"}, "phoneNumber": {"type": "string"}}},
        "models.Car": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "brand": {"type": "string"}, "category": {"type": "string"},
            "pricePerDay": {"type": "number"}, "imageUrl": {"type": "string"},
            "gallery": {"type": "array", "items": {"type": "string"}}, "gearBox": {"type": "string"}, "fuel": {"type": "string"},
            "doors": {"type": "integer"}, "seats": {"type": "integer"}, "airConditioner": {"type": "boolean"}, "distance": {"type": "number"},
            "equipment": {"type": "array", "items": {"type": "string"}}, "available": {"type": "boolean"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "models.Comment": {"type": "object", "properties": {
            "id": {"type": "integer"}, "carId": {"type": "integer"}, "author": {"type": "string"}, "text": {"type": "string"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "models.Booking": {"type": "object", "properties": {
            "id": {"type": "integer"}, "carId": {"type": "integer"}, "carName": {"type": "string"},
            "placeOfRental": {"type": "string"}, "placeOfReturn": {"type": "string"},
            "rentalDate": {"type": "string"}, "returnDate": {"type": "string"}, "phoneNumber": {"type": "string"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "models.Region": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "models.Income": {"type": "object", "properties": {
            "id": {"type": "integer"}, "year": {"type": "integer"}, "month": {"type": "integer"}, "day": {"type": "integer"},
            "totalIncome": {"type": "number"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RentCar API",
	Description:      "汽车租赁后台 API：车辆、评论、预订、地区与每日收入",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
