package view

// FormField is one named input as submitted by the form.
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CollectForm flattens fields into name -> value. Later fields with the
// same name overwrite earlier ones, so a roster form keeps only its last
// card per input name.
func CollectForm(fields []FormField) map[string]string {
	data := make(map[string]string, len(fields))
	for _, f := range fields {
		data[f.Name] = f.Value
	}
	return data
}
