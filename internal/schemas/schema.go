package schemas

// resumeSchema describes the resume document accepted by the inline
// download endpoint. Unknown template names are permitted; they fall
// back to the classic layout at render time.
const resumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ResumeDocument",
  "type": "object",
  "required": ["personalInfo"],
  "properties": {
    "title": {"type": "string"},
    "template": {"type": "string"},
    "personalInfo": {
      "type": "object",
      "required": ["fullName"],
      "properties": {
        "fullName": {"type": "string", "minLength": 1},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "address": {"type": "string"},
        "linkedIn": {"type": "string"},
        "website": {"type": "string"},
        "summary": {"type": "string"}
      },
      "additionalProperties": false
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "gpa": {"type": "string"},
          "description": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "current": {"type": "boolean"},
          "description": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "string"},
          "url": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "current": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    },
    "achievements": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"},
          "description": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`
