package debugui

var ExportedFields = exportedFields
